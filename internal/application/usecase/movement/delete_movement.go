package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// DeleteMovementInput represents the input for deleting a variable movement.
type DeleteMovementInput struct {
	ID uuid.UUID
}

// DeleteMovementUseCase removes a variable movement and reverts its effect on
// the affected account balances. The reversal is recorded as compensating
// transactions so the account log stays append-only.
type DeleteMovementUseCase struct {
	movementRepo adapter.MovementRepository
	accountRepo  adapter.AccountRepository
}

// NewDeleteMovementUseCase creates a new DeleteMovementUseCase instance.
func NewDeleteMovementUseCase(
	movementRepo adapter.MovementRepository,
	accountRepo adapter.AccountRepository,
) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}
}

// Execute deletes the movement and reverts the account balances.
func (uc *DeleteMovementUseCase) Execute(ctx context.Context, input DeleteMovementInput) error {
	movement, err := uc.movementRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	account, err := uc.accountRepo.FindByID(ctx, movement.AccountID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	today := now

	accounts := []*entity.Account{account}
	var transactions []*entity.Transaction

	switch movement.Type {
	case entity.MovementTypeExpense:
		account.Balance = account.Balance.Add(movement.Amount)
		transactions = append(transactions, &entity.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Date:        today,
			Kind:        entity.TransactionKindIncome,
			Description: fmt.Sprintf("Reverso: %s - %s", movement.Category, movement.Description),
			Amount:      movement.Amount,
			CreatedAt:   now,
		})

	case entity.MovementTypeIncome:
		account.Balance = account.Balance.Sub(movement.Amount)
		transactions = append(transactions, &entity.Transaction{
			ID:          uuid.New(),
			AccountID:   account.ID,
			Date:        today,
			Kind:        entity.TransactionKindExpense,
			Description: fmt.Sprintf("Reverso: %s - %s", movement.Category, movement.Description),
			Amount:      movement.Amount,
			CreatedAt:   now,
		})

	case entity.MovementTypeTransfer:
		destination, err := uc.accountRepo.FindByID(ctx, *movement.DestinationAccountID)
		if err != nil {
			return err
		}

		account.Balance = account.Balance.Add(movement.Amount)
		destination.Balance = destination.Balance.Sub(movement.Amount)
		accounts = append(accounts, destination)

		transactions = append(transactions,
			&entity.Transaction{
				ID:          uuid.New(),
				AccountID:   account.ID,
				Date:        today,
				Kind:        entity.TransactionKindIncome,
				Description: fmt.Sprintf("Reverso traslado a %s", destination.Name),
				Amount:      movement.Amount,
				CreatedAt:   now,
			},
			&entity.Transaction{
				ID:          uuid.New(),
				AccountID:   destination.ID,
				Date:        today,
				Kind:        entity.TransactionKindExpense,
				Description: fmt.Sprintf("Reverso traslado de %s", account.Name),
				Amount:      movement.Amount,
				CreatedAt:   now,
			},
		)
	}

	for _, acc := range accounts {
		acc.UpdatedAt = now
	}

	if err := uc.movementRepo.Delete(ctx, movement.ID, accounts, transactions); err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	return nil
}
