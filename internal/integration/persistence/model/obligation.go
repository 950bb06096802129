package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// ObligationModel represents the obligations table in the database. Recurring
// and installment obligations share the table; the type column decides which
// columns are meaningful.
type ObligationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:varchar(500)"`
	CreationDate time.Time `gorm:"type:date;not null"`

	NominalDay int              `gorm:"not null;default:0"`
	ValueMode  string           `gorm:"type:varchar(20)"`
	Amount     *decimal.Decimal `gorm:"type:decimal(15,2)"`

	TotalAmount       decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	PendingBalance    decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	Periodicity       string           `gorm:"type:varchar(20)"`
	PaymentMode       string           `gorm:"type:varchar(20)"`
	InstallmentAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	LumpDueDate       *time.Time       `gorm:"type:date"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	History []SettlementModel `gorm:"foreignKey:ObligationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ObligationModel.
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToEntity converts an ObligationModel to a domain Obligation entity.
func (m *ObligationModel) ToEntity() *entity.Obligation {
	history := make([]entity.Settlement, len(m.History))
	for i, sm := range m.History {
		history[i] = *sm.ToEntity()
	}

	return &entity.Obligation{
		ID:                m.ID,
		Type:              entity.ObligationType(m.Type),
		Name:              m.Name,
		Description:       m.Description,
		CreationDate:      m.CreationDate,
		NominalDay:        m.NominalDay,
		ValueMode:         entity.ValueMode(m.ValueMode),
		Amount:            m.Amount,
		TotalAmount:       m.TotalAmount,
		PendingBalance:    m.PendingBalance,
		Periodicity:       valueobject.Periodicity(m.Periodicity),
		PaymentMode:       entity.PaymentMode(m.PaymentMode),
		InstallmentAmount: m.InstallmentAmount,
		LumpDueDate:       m.LumpDueDate,
		History:           history,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ObligationFromEntity creates an ObligationModel from a domain Obligation
// entity. History rows are not included; they are appended individually.
func ObligationFromEntity(obligation *entity.Obligation) *ObligationModel {
	return &ObligationModel{
		ID:                obligation.ID,
		Type:              string(obligation.Type),
		Name:              obligation.Name,
		Description:       obligation.Description,
		CreationDate:      obligation.CreationDate,
		NominalDay:        obligation.NominalDay,
		ValueMode:         string(obligation.ValueMode),
		Amount:            obligation.Amount,
		TotalAmount:       obligation.TotalAmount,
		PendingBalance:    obligation.PendingBalance,
		Periodicity:       string(obligation.Periodicity),
		PaymentMode:       string(obligation.PaymentMode),
		InstallmentAmount: obligation.InstallmentAmount,
		LumpDueDate:       obligation.LumpDueDate,
		CreatedAt:         obligation.CreatedAt,
		UpdatedAt:         obligation.UpdatedAt,
	}
}
