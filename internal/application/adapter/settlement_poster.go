// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// SettlementPoster applies a validated settlement to durable storage.
// The account and obligation carry their post-settlement state; the
// transaction and settlement are the rows to append. All four writes must
// take effect atomically: if persisting one half fails, the other half must
// not be committed.
type SettlementPoster interface {
	PostSettlement(
		ctx context.Context,
		account *entity.Account,
		transaction *entity.Transaction,
		obligation *entity.Obligation,
		settlement *entity.Settlement,
	) error
}
