package api

// User is the account currently signed in, as reported by the service.
// Immutable from the client's perspective except via re-fetch after login.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// Category is an expense category. Default categories are system-provided
// and are never offered edit or delete controls.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Expense is a single spend record. Amount is a decimal string to avoid
// floating point drift; the AI suggestion fields are server-computed and
// read-only to this client.
type Expense struct {
	ID                    string    `json:"id"`
	Amount                string    `json:"amount"`
	Description           string    `json:"description"`
	ExpenseDate           Date      `json:"expense_date"`
	PaymentMethod         string    `json:"payment_method"`
	Notes                 string    `json:"notes,omitempty"`
	CategoryID            string    `json:"category_id,omitempty"`
	Category              *Category `json:"category,omitempty"`
	AISuggestedCategoryID string    `json:"ai_suggested_category_id,omitempty"`
	AISuggestedCategory   *Category `json:"ai_suggested_category,omitempty"`
	AIConfidenceScore     float64   `json:"ai_confidence_score,omitempty"`
	CreatedAt             Timestamp `json:"created_at"`
	UpdatedAt             Timestamp `json:"updated_at"`
}

// ExpenseList is one page of expenses.
type ExpenseList struct {
	Items      []Expense `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// AuthResponse is the login response carrying the bearer credential.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// UpdateCategoryRequest is the payload for renaming or recoloring a
// category.
type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateExpenseRequest is the payload for recording a new expense. Amount
// is a decimal string; CategoryID may be empty, in which case the service
// may fill in an AI suggestion.
type CreateExpenseRequest struct {
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	ExpenseDate   Date   `json:"expense_date"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes,omitempty"`
	CategoryID    string `json:"category_id,omitempty"`
}
