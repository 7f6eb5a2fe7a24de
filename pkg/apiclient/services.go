package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, in LoginInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Logout revokes the current token and forgets it.
func (c *Client) Logout(ctx context.Context) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/logout", nil, &out); err != nil {
		return "", err
	}
	c.SetToken("")
	return out.Message, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories returns the caller's categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPost, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory applies a partial update.
func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryUpdate) (*Category, error) {
	var out Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), in.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category. Its expenses keep their category_id.
func (c *Client) DeleteCategory(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListExpenses returns the caller's expenses, newest first.
func (c *Client) ListExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExpense records an expense.
func (c *Client) CreateExpense(ctx context.Context, in ExpenseInput) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExpense fetches one expense.
func (c *Client) GetExpense(ctx context.Context, id string) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodGet, "/expenses/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExpense applies a partial update.
func (c *Client) UpdateExpense(ctx context.Context, id string, in ExpenseUpdate) (*Expense, error) {
	var out Expense
	if err := c.do(ctx, http.MethodPut, "/expenses/"+url.PathEscape(id), in.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense deletes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Summary returns totals over the caller's expenses.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	if err := c.do(ctx, http.MethodGet, "/expenses-summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
