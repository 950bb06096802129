// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account along with its initial-balance transaction.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID, without its transaction log.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDWithTransactions retrieves an account with its full transaction
	// log, ordered by date descending.
	FindByIDWithTransactions(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves all accounts ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Account, error)
}
