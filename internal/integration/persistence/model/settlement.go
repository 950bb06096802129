package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// SettlementModel represents the settlements table in the database. The
// (obligation_id, month_id, period_key) index backs the already-settled check
// for calendar periods; extra principal payments reuse the key without being
// unique on it.
type SettlementModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ObligationID uuid.UUID       `gorm:"type:uuid;not null;index:idx_settlements_period"`
	MonthID      string          `gorm:"type:varchar(7);not null;index:idx_settlements_period"`
	PeriodKey    string          `gorm:"type:varchar(20);not null;index:idx_settlements_period"`
	Date         time.Time       `gorm:"type:date;not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SettlementModel.
func (SettlementModel) TableName() string {
	return "settlements"
}

// ToEntity converts a SettlementModel to a domain Settlement entity.
func (m *SettlementModel) ToEntity() *entity.Settlement {
	return &entity.Settlement{
		ID:           m.ID,
		ObligationID: m.ObligationID,
		MonthID:      m.MonthID,
		PeriodKey:    m.PeriodKey,
		Date:         m.Date,
		Amount:       m.Amount,
		AccountID:    m.AccountID,
	}
}

// SettlementFromEntity creates a SettlementModel from a domain Settlement entity.
func SettlementFromEntity(settlement *entity.Settlement) *SettlementModel {
	return &SettlementModel{
		ID:           settlement.ID,
		ObligationID: settlement.ObligationID,
		MonthID:      settlement.MonthID,
		PeriodKey:    settlement.PeriodKey,
		Date:         settlement.Date,
		Amount:       settlement.Amount,
		AccountID:    settlement.AccountID,
		CreatedAt:    time.Now().UTC(),
	}
}
