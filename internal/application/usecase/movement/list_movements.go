package movement

import (
	"context"
	"fmt"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// ListMovementsInput represents the input for listing variable movements.
type ListMovementsInput struct {
	Type *entity.MovementType
}

// ListMovementsOutput represents the output of listing variable movements.
type ListMovementsOutput struct {
	Movements []*entity.VariableMovement
}

// ListMovementsUseCase lists variable movements newest first, optionally
// filtered by type.
type ListMovementsUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(movementRepo adapter.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{
		movementRepo: movementRepo,
	}
}

// Execute retrieves the movements.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
	movements, err := uc.movementRepo.FindAll(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return &ListMovementsOutput{
		Movements: movements,
	}, nil
}
