// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// ObligationRepository defines the interface for obligation persistence
// operations. Obligations are always loaded with their settlement history,
// since the scheduler and the ledger both depend on it.
type ObligationRepository interface {
	// Create creates a new obligation.
	Create(ctx context.Context, obligation *entity.Obligation) error

	// CreateWithDisbursement creates the obligation and applies a loan
	// disbursement (account transaction plus updated balance) in one atomic
	// unit. Used when a receivable is funded from one of the user's accounts.
	CreateWithDisbursement(ctx context.Context, obligation *entity.Obligation, account *entity.Account, transaction *entity.Transaction) error

	// FindByID retrieves an obligation with its settlement history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error)

	// FindAll retrieves all obligations with their settlement histories,
	// optionally filtered by type.
	FindAll(ctx context.Context, obligationType *entity.ObligationType) ([]*entity.Obligation, error)

	// Delete removes an obligation together with its settlement history.
	Delete(ctx context.Context, id uuid.UUID) error
}
