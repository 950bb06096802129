package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/integration/persistence/model"
)

// movementRepository implements the adapter.MovementRepository interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a new movement repository instance.
func NewMovementRepository(db *gorm.DB) adapter.MovementRepository {
	return &movementRepository{
		db: db,
	}
}

// Create stores the movement, its account transactions and the updated
// account balances atomically.
func (r *movementRepository) Create(
	ctx context.Context,
	movement *entity.VariableMovement,
	accounts []*entity.Account,
	transactions []*entity.Transaction,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.MovementFromEntity(movement)).Error; err != nil {
			return err
		}
		return applyAccountEffects(tx, accounts, transactions)
	})
}

// FindByID retrieves a movement by its ID.
func (r *movementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VariableMovement, error) {
	var movementModel model.MovementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&movementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return movementModel.ToEntity(), nil
}

// FindAll retrieves movements ordered by date descending, optionally filtered
// by type.
func (r *movementRepository) FindAll(ctx context.Context, movementType *entity.MovementType) ([]*entity.VariableMovement, error) {
	query := r.db.WithContext(ctx).Order("date DESC, created_at DESC")
	if movementType != nil {
		query = query.Where("type = ?", string(*movementType))
	}

	var movementModels []model.MovementModel
	result := query.Find(&movementModels)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.VariableMovement, len(movementModels))
	for i, mm := range movementModels {
		movements[i] = mm.ToEntity()
	}
	return movements, nil
}

// Delete removes the movement, appends the compensating transactions and
// saves the reverted account balances atomically.
func (r *movementRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
	accounts []*entity.Account,
	transactions []*entity.Transaction,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.MovementModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrMovementNotFound
		}
		return applyAccountEffects(tx, accounts, transactions)
	})
}

// DeleteAll removes every movement without touching account balances.
func (r *movementRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.MovementModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// applyAccountEffects appends the transaction rows and saves the account
// balances inside an open database transaction.
func applyAccountEffects(tx *gorm.DB, accounts []*entity.Account, transactions []*entity.Transaction) error {
	for _, transaction := range transactions {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
	}
	for _, account := range accounts {
		accountModel := model.AccountFromEntity(account)
		if err := tx.Model(&model.AccountModel{}).
			Where("id = ?", accountModel.ID).
			Updates(map[string]interface{}{
				"balance":    accountModel.Balance,
				"updated_at": accountModel.UpdatedAt,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}
