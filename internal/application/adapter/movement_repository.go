// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// MovementRepository defines the interface for variable movement persistence.
// Create and Delete receive the accounts in their post-mutation state plus
// the transaction rows to append; the implementation commits everything in
// one atomic unit.
type MovementRepository interface {
	// Create stores the movement, appends the account transactions and saves
	// the updated account balances atomically.
	Create(ctx context.Context, movement *entity.VariableMovement, accounts []*entity.Account, transactions []*entity.Transaction) error

	// FindByID retrieves a movement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VariableMovement, error)

	// FindAll retrieves movements ordered by date descending, optionally
	// filtered by type.
	FindAll(ctx context.Context, movementType *entity.MovementType) ([]*entity.VariableMovement, error)

	// Delete removes the movement, appends the compensating transactions and
	// saves the reverted account balances atomically.
	Delete(ctx context.Context, id uuid.UUID, accounts []*entity.Account, transactions []*entity.Transaction) error

	// DeleteAll removes every movement without touching account balances.
	DeleteAll(ctx context.Context) error
}
