// Command createuser registers an account from the command line.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], config.Load(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("createuser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address used to log in")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: createuser -name <name> -email <email> [-password <password>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: name, email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.AutoMigrate(model.All()...); err != nil {
		return err
	}

	gormDB := database.DB()
	clock := adapters.NewSystemClock()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.Expiry,
		persistence.NewTokenRepository(gormDB, clock),
		clock,
	)
	register := auth.NewRegisterUserUseCase(
		persistence.NewUserRepository(gormDB),
		adapters.NewPasswordServiceWithCost(cfg.Password.BcryptCost),
		tokenService,
		clock,
	)

	output, err := register.Execute(ctx, auth.RegisterUserInput{
		Name:                 *name,
		Email:                *email,
		Password:             password,
		PasswordConfirmation: password,
	})
	if err != nil {
		var valErr *domainerror.ValidationError
		if errors.As(err, &valErr) {
			return errors.New(formatValidation(valErr))
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s\n", output.User.Email, output.User.ID)
	return nil
}

// formatValidation renders field errors one per line, fields sorted.
func formatValidation(v *domainerror.ValidationError) string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid user")
	for _, field := range fields {
		for _, msg := range v.Fields[field] {
			fmt.Fprintf(&b, "\n  %s: %s", field, msg)
		}
	}
	return b.String()
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
