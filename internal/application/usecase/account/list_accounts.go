// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsOutput represents the output of listing accounts, grouped
// totals included so the balance view needs no extra round trips.
type ListAccountsOutput struct {
	Accounts       []*entity.Account
	TotalBalance   decimal.Decimal
	CategoryTotals map[entity.AccountCategory]decimal.Decimal
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, _ ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := decimal.Zero
	categoryTotals := make(map[entity.AccountCategory]decimal.Decimal)
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
		categoryTotals[acc.Category] = categoryTotals[acc.Category].Add(acc.Balance)
	}

	return &ListAccountsOutput{
		Accounts:       accounts,
		TotalBalance:   total,
		CategoryTotals: categoryTotals,
	}, nil
}
