package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/usecase/account"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category" binding:"required,oneof=solidary bank investment cash"`
	Currency string          `json:"currency,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TransactionResponse represents one account log entry in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts       []AccountResponse          `json:"accounts"`
	TotalBalance   decimal.Decimal            `json:"total_balance"`
	CategoryTotals map[string]decimal.Decimal `json:"category_totals"`
}

// AccountMovementsResponse represents an account together with its
// transaction log.
type AccountMovementsResponse struct {
	Account      AccountResponse       `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Category:  string(a.Category),
		Currency:  a.Currency,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		AccountID:   t.AccountID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Kind:        string(t.Kind),
		Description: t.Description,
		Amount:      t.Amount,
		CreatedAt:   t.CreatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to an AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = ToAccountResponse(a)
	}

	categoryTotals := make(map[string]decimal.Decimal, len(output.CategoryTotals))
	for category, total := range output.CategoryTotals {
		categoryTotals[string(category)] = total
	}

	return AccountListResponse{
		Accounts:       accounts,
		TotalBalance:   output.TotalBalance,
		CategoryTotals: categoryTotals,
	}
}

// ToAccountMovementsResponse converts a GetAccountMovementsOutput to an
// AccountMovementsResponse.
func ToAccountMovementsResponse(output *account.GetAccountMovementsOutput) AccountMovementsResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i := range output.Transactions {
		transactions[i] = ToTransactionResponse(&output.Transactions[i])
	}

	return AccountMovementsResponse{
		Account:      ToAccountResponse(output.Account),
		Transactions: transactions,
	}
}
