// Package account contains account-related use cases.
package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// GetAccountMovementsInput represents the input for listing an account's
// transaction log.
type GetAccountMovementsInput struct {
	AccountID uuid.UUID
	// Filter matches case-insensitively against description and kind.
	Filter string
}

// GetAccountMovementsOutput represents the output of listing an account's
// transaction log.
type GetAccountMovementsOutput struct {
	Account      *entity.Account
	Transactions []entity.Transaction
}

// GetAccountMovementsUseCase handles account movement listing.
type GetAccountMovementsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountMovementsUseCase creates a new GetAccountMovementsUseCase instance.
func NewGetAccountMovementsUseCase(accountRepo adapter.AccountRepository) *GetAccountMovementsUseCase {
	return &GetAccountMovementsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the account with its transaction log, optionally filtered.
func (uc *GetAccountMovementsUseCase) Execute(ctx context.Context, input GetAccountMovementsInput) (*GetAccountMovementsOutput, error) {
	account, err := uc.accountRepo.FindByIDWithTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	transactions := account.Transactions
	if term := strings.ToLower(strings.TrimSpace(input.Filter)); term != "" {
		filtered := make([]entity.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if strings.Contains(strings.ToLower(t.Description), term) ||
				strings.Contains(strings.ToLower(string(t.Kind)), term) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	return &GetAccountMovementsOutput{
		Account:      account,
		Transactions: transactions,
	}, nil
}
