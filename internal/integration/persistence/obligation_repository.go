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

// obligationRepository implements the adapter.ObligationRepository interface.
type obligationRepository struct {
	db *gorm.DB
}

// NewObligationRepository creates a new obligation repository instance.
func NewObligationRepository(db *gorm.DB) adapter.ObligationRepository {
	return &obligationRepository{
		db: db,
	}
}

// Create creates a new obligation in the database.
func (r *obligationRepository) Create(ctx context.Context, obligation *entity.Obligation) error {
	obligationModel := model.ObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Create(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithDisbursement creates the obligation and applies the loan
// disbursement atomically: the obligation row, the expense transaction on the
// funding account and the updated account balance all commit together.
func (r *obligationRepository) CreateWithDisbursement(
	ctx context.Context,
	obligation *entity.Obligation,
	account *entity.Account,
	transaction *entity.Transaction,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ObligationFromEntity(obligation)).Error; err != nil {
			return err
		}
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
		return nil
	})
}

// FindByID retrieves an obligation with its settlement history.
func (r *obligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error) {
	var obligationModel model.ObligationModel
	result := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&obligationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObligationNotFound
		}
		return nil, result.Error
	}
	return obligationModel.ToEntity(), nil
}

// FindAll retrieves all obligations with their settlement histories,
// optionally filtered by type.
func (r *obligationRepository) FindAll(ctx context.Context, obligationType *entity.ObligationType) ([]*entity.Obligation, error) {
	query := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, created_at ASC")
		}).
		Order("created_at ASC")
	if obligationType != nil {
		query = query.Where("type = ?", string(*obligationType))
	}

	var obligationModels []model.ObligationModel
	result := query.Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.Obligation, len(obligationModels))
	for i, om := range obligationModels {
		obligations[i] = om.ToEntity()
	}
	return obligations, nil
}

// Delete removes an obligation together with its settlement history.
func (r *obligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SettlementModel{}, "obligation_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.ObligationModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrObligationNotFound
		}
		return nil
	})
}
