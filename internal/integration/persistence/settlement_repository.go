package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/integration/persistence/model"
)

// settlementRepository implements the adapter.SettlementPoster interface.
type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository instance.
func NewSettlementRepository(db *gorm.DB) adapter.SettlementPoster {
	return &settlementRepository{
		db: db,
	}
}

// PostSettlement commits the four effects of a settlement in one database
// transaction: the account transaction row, the updated account balance, the
// settlement history row and the updated obligation pending balance. Any
// failure rolls back all of them.
func (r *settlementRepository) PostSettlement(
	ctx context.Context,
	account *entity.Account,
	transaction *entity.Transaction,
	obligation *entity.Obligation,
	settlement *entity.Settlement,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}

		accountModel := model.AccountFromEntity(account)
		if err := tx.Model(&model.AccountModel{}).
			Where("id = ?", accountModel.ID).
			Updates(map[string]interface{}{
				"balance":    accountModel.Balance,
				"updated_at": accountModel.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		if err := tx.Create(model.SettlementFromEntity(settlement)).Error; err != nil {
			return err
		}

		obligationModel := model.ObligationFromEntity(obligation)
		if err := tx.Model(&model.ObligationModel{}).
			Where("id = ?", obligationModel.ID).
			Updates(map[string]interface{}{
				"pending_balance": obligationModel.PendingBalance,
				"updated_at":      obligationModel.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		return nil
	})
}
