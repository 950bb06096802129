// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name     string
	Category entity.AccountCategory
	Currency string
	Balance  decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !entity.IsValidAccountCategory(input.Category) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountCategory,
			"category must be 'solidary', 'bank', 'investment' or 'cash'",
			domainerror.ErrInvalidAccountCategory,
		)
	}

	// Cash accounts default to a fixed name, as the legacy form did.
	name := input.Name
	if name == "" && input.Category == entity.AccountCategoryCash {
		name = "Efectivo"
	}
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			"account name is required",
			domainerror.ErrInvalidAccountName,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = "COP"
	}

	if input.Balance.IsNegative() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNegativeInitialBalance,
			"initial balance cannot be negative",
			domainerror.ErrNegativeInitialBalance,
		)
	}

	account := entity.NewAccount(name, input.Category, currency, input.Balance)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
