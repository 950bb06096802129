// Package movement contains variable movement use cases.
package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// RegisterMovementInput represents the input for registering a variable
// movement (one-off expense, income or transfer).
type RegisterMovementInput struct {
	Type                 entity.MovementType
	Category             string
	Description          string
	Date                 time.Time
	Amount               decimal.Decimal
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID
}

// RegisterMovementOutput represents the output of registering a movement.
type RegisterMovementOutput struct {
	Movement *entity.VariableMovement
}

// RegisterMovementUseCase applies a variable movement to the affected
// account(s) and records it, atomically.
type RegisterMovementUseCase struct {
	movementRepo adapter.MovementRepository
	accountRepo  adapter.AccountRepository
}

// NewRegisterMovementUseCase creates a new RegisterMovementUseCase instance.
func NewRegisterMovementUseCase(
	movementRepo adapter.MovementRepository,
	accountRepo adapter.AccountRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}
}

// Execute validates and registers the movement.
func (uc *RegisterMovementUseCase) Execute(ctx context.Context, input RegisterMovementInput) (*RegisterMovementOutput, error) {
	if !entity.IsValidMovementType(input.Type) {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementType,
			"type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidMovementType,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidMovementAmount,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	date := valueobject.Midnight(input.Date)
	now := time.Now().UTC()

	accounts := []*entity.Account{account}
	var transactions []*entity.Transaction

	switch input.Type {
	case entity.MovementTypeExpense:
		if account.Balance.LessThan(input.Amount) {
			return nil, domainerror.NewSettlementError(
				domainerror.ErrCodeInsufficientFunds,
				"insufficient funds in account",
				domainerror.ErrInsufficientFunds,
			)
		}
		account.Balance = account.Balance.Sub(input.Amount)
		transactions = append(transactions, &entity.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Date:        date,
			Kind:        entity.TransactionKindExpense,
			Description: fmt.Sprintf("Gasto Var: %s - %s", input.Category, input.Description),
			Amount:      input.Amount,
			CreatedAt:   now,
		})

	case entity.MovementTypeIncome:
		account.Balance = account.Balance.Add(input.Amount)
		transactions = append(transactions, &entity.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Date:        date,
			Kind:        entity.TransactionKindIncome,
			Description: fmt.Sprintf("Ingreso Var: %s - %s", input.Category, input.Description),
			Amount:      input.Amount,
			CreatedAt:   now,
		})

	case entity.MovementTypeTransfer:
		if input.DestinationAccountID == nil {
			return nil, domainerror.NewMovementError(
				domainerror.ErrCodeMissingDestinationAccount,
				"transfer requires a destination account",
				domainerror.ErrMissingDestinationAccount,
			)
		}
		if *input.DestinationAccountID == input.AccountID {
			return nil, domainerror.NewMovementError(
				domainerror.ErrCodeSameTransferAccounts,
				"transfer accounts must differ",
				domainerror.ErrSameTransferAccounts,
			)
		}
		if account.Balance.LessThan(input.Amount) {
			return nil, domainerror.NewSettlementError(
				domainerror.ErrCodeInsufficientFunds,
				"insufficient funds in source account",
				domainerror.ErrInsufficientFunds,
			)
		}

		destination, err := uc.accountRepo.FindByID(ctx, *input.DestinationAccountID)
		if err != nil {
			return nil, err
		}

		account.Balance = account.Balance.Sub(input.Amount)
		destination.Balance = destination.Balance.Add(input.Amount)
		accounts = append(accounts, destination)

		transactions = append(transactions,
			&entity.Transaction{
				ID:          uuid.New(),
				AccountID:   account.ID,
				Date:        date,
				Kind:        entity.TransactionKindExpense,
				Description: fmt.Sprintf("Traslado a %s", destination.Name),
				Amount:      input.Amount,
				CreatedAt:   now,
			},
			&entity.Transaction{
				ID:          uuid.New(),
				AccountID:   destination.ID,
				Date:        date,
				Kind:        entity.TransactionKindIncome,
				Description: fmt.Sprintf("Traslado de %s", account.Name),
				Amount:      input.Amount,
				CreatedAt:   now,
			},
		)
	}

	for _, acc := range accounts {
		acc.UpdatedAt = now
	}

	movement := entity.NewVariableMovement(
		input.Type,
		input.Category,
		input.Description,
		date,
		input.Amount,
		input.AccountID,
		input.DestinationAccountID,
	)

	if err := uc.movementRepo.Create(ctx, movement, accounts, transactions); err != nil {
		return nil, fmt.Errorf("failed to register movement: %w", err)
	}

	return &RegisterMovementOutput{
		Movement: movement,
	}, nil
}
