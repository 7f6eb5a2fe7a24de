package apiclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate returns the Date for year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// User is an account as returned by the API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginInput is the body of POST /login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Category is a user's expense category.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	Color     *string   `json:"color"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput creates a category.
type CategoryInput struct {
	Name  string  `json:"name"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CategoryUpdate changes the non-nil fields of a category.
// ClearIcon and ClearColor send an explicit null.
type CategoryUpdate struct {
	Name       *string
	Icon       *string
	Color      *string
	ClearIcon  bool
	ClearColor bool
}

func (u CategoryUpdate) body() map[string]any {
	body := map[string]any{}
	if u.Name != nil {
		body["name"] = *u.Name
	}
	setNullable(body, "icon", u.Icon, u.ClearIcon)
	setNullable(body, "color", u.Color, u.ClearColor)
	return body
}

// Expense is a single expense with its category, when the category still exists.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	Date        Date            `json:"date"`
	CategoryID  *string         `json:"category_id"`
	Category    *Category       `json:"category"`
	UserID      string          `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseInput creates an expense.
type ExpenseInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Date        Date            `json:"date"`
	CategoryID  *string         `json:"category_id,omitempty"`
}

// ExpenseUpdate changes the non-nil fields of an expense.
// ClearDescription and ClearCategory send an explicit null.
type ExpenseUpdate struct {
	Amount           *decimal.Decimal
	Description      *string
	Date             *Date
	CategoryID       *string
	ClearDescription bool
	ClearCategory    bool
}

func (u ExpenseUpdate) body() map[string]any {
	body := map[string]any{}
	if u.Amount != nil {
		body["amount"] = *u.Amount
	}
	if u.Date != nil {
		body["date"] = *u.Date
	}
	setNullable(body, "description", u.Description, u.ClearDescription)
	setNullable(body, "category_id", u.CategoryID, u.ClearCategory)
	return body
}

func setNullable(body map[string]any, key string, value *string, clear bool) {
	switch {
	case clear:
		body[key] = nil
	case value != nil:
		body[key] = *value
	}
}

// SummaryCategory is the category of a summary row.
type SummaryCategory struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryTotal is one per-category row of a Summary. Category is nil when it was deleted.
type CategoryTotal struct {
	Category *SummaryCategory `json:"category"`
	Total    decimal.Decimal  `json:"total"`
}

// Summary aggregates the caller's expenses.
type Summary struct {
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	RecentExpenses     decimal.Decimal `json:"recent_expenses"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
}

type messageResponse struct {
	Message string `json:"message"`
}
