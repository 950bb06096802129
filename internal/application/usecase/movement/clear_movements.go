package movement

import (
	"context"
	"fmt"

	"github.com/finanzas-app/backend/internal/application/adapter"
)

// ClearMovementsUseCase removes every variable movement. Account balances are
// left untouched; this clears the history only.
type ClearMovementsUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewClearMovementsUseCase creates a new ClearMovementsUseCase instance.
func NewClearMovementsUseCase(movementRepo adapter.MovementRepository) *ClearMovementsUseCase {
	return &ClearMovementsUseCase{
		movementRepo: movementRepo,
	}
}

// Execute deletes all movements.
func (uc *ClearMovementsUseCase) Execute(ctx context.Context) error {
	if err := uc.movementRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear movements: %w", err)
	}
	return nil
}
