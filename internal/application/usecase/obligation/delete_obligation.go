// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/adapter"
)

// DeleteObligationInput represents the input for obligation deletion.
type DeleteObligationInput struct {
	ObligationID uuid.UUID
}

// DeleteObligationUseCase handles obligation deletion. Deleting an obligation
// removes its entire settlement history; account balances are untouched.
type DeleteObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewDeleteObligationUseCase creates a new DeleteObligationUseCase instance.
func NewDeleteObligationUseCase(obligationRepo adapter.ObligationRepository) *DeleteObligationUseCase {
	return &DeleteObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation deletion.
func (uc *DeleteObligationUseCase) Execute(ctx context.Context, input DeleteObligationInput) error {
	// Resolve first so a missing ID reports not-found rather than a no-op.
	if _, err := uc.obligationRepo.FindByID(ctx, input.ObligationID); err != nil {
		return err
	}

	if err := uc.obligationRepo.Delete(ctx, input.ObligationID); err != nil {
		return fmt.Errorf("failed to delete obligation: %w", err)
	}
	return nil
}
