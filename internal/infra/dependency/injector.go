// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/infra/cache"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	TokenService adapter.TokenService
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case revoked tokens are kept in the database.
// A nil clock means the system clock.
func NewInjector(
	cfg *config.Config,
	database *db.Database,
	redisClient *redis.Client,
	clock adapter.Clock,
	logger *slog.Logger,
) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	gormDB := database.DB()

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	expenseRepo := persistence.NewExpenseRepository(gormDB)
	summaryRepo := persistence.NewSummaryRepository(gormDB)

	var revocationStore adapter.TokenRevocationStore
	var cacheHealthChecker controller.HealthChecker
	if redisClient != nil {
		revocationStore = adapters.NewRedisRevocationStore(redisClient, clock)
		cacheHealthChecker = cache.HealthCheck(redisClient)
	} else {
		revocationStore = persistence.NewTokenRepository(gormDB, clock)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordServiceWithCost(cfg.Password.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, revocationStore, clock)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	currentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, clock)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, clock)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, clock)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, clock)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	getSummaryUseCase := summary.NewGetSummaryUseCase(summaryRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck, cacheHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
		currentUserUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	summaryController := controller.NewSummaryController(getSummaryUseCase)

	// Create middleware
	// Login throttling is off for test runs so scenarios can log in repeatedly
	loginLimit := cfg.RateLimit.LoginLimit
	if cfg.Server.Environment == config.EnvTest || config.IsE2EMode() {
		loginLimit = 0
	}
	loginRateLimiter := middleware.NewRateLimiterWithConfig(loginLimit, cfg.RateLimit.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		expenseController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
		logger,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:       cfg,
		DB:           gormDB,
		Router:       r,
		TokenService: tokenService,
	}
}
