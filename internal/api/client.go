// Package api is the client for the Spendly REST service.
//
// It exposes one method per remote operation, transparently attaching the
// stored bearer credential to every request and clearing it when the
// service rejects it with a 401. The client performs no entity caching;
// its only side effects are credential persistence on login and credential
// clearing on logout or authorization failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NicoCalcagno/Spendly/internal/log"
	"github.com/NicoCalcagno/Spendly/internal/money"
	"github.com/NicoCalcagno/Spendly/internal/token"
)

// DefaultPageSize is used when a caller asks for a non-positive page size.
const DefaultPageSize = 20

// Client calls the remote expense service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	logger  *log.Logger
}

// NewClient creates a client for the service at baseURL (including the
// /api/v1 prefix). The credential in tokens is attached to every request.
func NewClient(baseURL string, tokens token.Store, logger *log.Logger, timeout time.Duration) *Client {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent("api")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:   http.DefaultTransport,
				tokens: tokens,
				logger: logger,
			},
		},
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates and persists the issued credential. The subsequent
// CurrentUser call is left to the session layer.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	var auth AuthResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil,
		loginRequest{Email: email, Password: password}, &auth, "Login failed")
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(auth.AccessToken); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	c.logger.InfoContext(ctx, "Logged in", "email", email)
	return &auth, nil
}

// Register creates a new account. It does not sign the account in; see
// session.Manager.SignUp for the register-then-login flow.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, ErrEmptyFullName
	}

	var user User
	err := c.do(ctx, "register", http.MethodPost, "/users/register", nil,
		registerRequest{Email: email, Password: password, FullName: fullName}, &user, "Registration failed")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the account owning the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	err := c.do(ctx, "current_user", http.MethodGet, "/users/me", nil, nil, &user, "Failed to load user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout discards the stored credential. No network call is involved; the
// bearer token simply stops being presented.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// ListCategories returns all categories visible to the current user.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.do(ctx, "list_categories", http.MethodGet, "/categories/", nil, nil, &categories, "Failed to load categories")
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a custom category. An empty or whitespace-only
// name fails locally, before any network call.
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrEmptyCategoryName
	}

	var category Category
	err := c.do(ctx, "create_category", http.MethodPost, "/categories/", nil, req, &category, "Failed to create category")
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames or recolors an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrEmptyCategoryName
	}

	var category Category
	err := c.do(ctx, "update_category", http.MethodPut, "/categories/"+id, nil, req, &category, "Failed to update category")
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, "delete_category", http.MethodDelete, "/categories/"+id, nil, nil, nil, "Failed to delete category")
}

// ListExpenses returns one page of expenses. Page numbering is 1-based;
// the page translates to an offset/limit query on the wire.
func (c *Client) ListExpenses(ctx context.Context, page, pageSize int) (*ExpenseList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa((page-1)*pageSize))
	query.Set("limit", strconv.Itoa(pageSize))

	var list ExpenseList
	err := c.do(ctx, "list_expenses", http.MethodGet, "/expenses/", query, nil, &list, "Failed to load expenses")
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateExpense records a new expense. The amount must be a parseable
// decimal string; it is normalized to two decimal places before sending.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return nil, ErrEmptyDescription
	}
	cents, err := money.ParseCents(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", req.Amount, err)
	}
	req.Amount = cents.String()

	var expense Expense
	if err := c.do(ctx, "create_expense", http.MethodPost, "/expenses/", nil, req, &expense, "Failed to add expense"); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, "delete_expense", http.MethodDelete, "/expenses/"+id, nil, nil, nil, "Failed to delete expense")
}

// do performs one request/response cycle. Non-2xx responses become an
// *APIError carrying the server detail message when present, else the
// per-operation fallback.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any, fallback string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Request failed", "op", op, "error", err)
		return &APIError{Op: op, Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var serverErr errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&serverErr); decodeErr == nil && serverErr.Detail != "" {
			msg = serverErr.Detail
		}
		c.logger.WarnContext(ctx, "Request rejected", "op", op, "status", resp.StatusCode, "message", msg)
		return &APIError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", op, err)
		}
	}
	return nil
}
