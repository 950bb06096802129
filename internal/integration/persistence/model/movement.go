package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// MovementModel represents the variable_movements table in the database.
type MovementModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type                 string          `gorm:"type:varchar(20);not null;index"`
	Category             string          `gorm:"type:varchar(100);not null"`
	Description          string          `gorm:"type:varchar(500)"`
	Date                 time.Time       `gorm:"type:date;not null"`
	Amount               decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AccountID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	DestinationAccountID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MovementModel.
func (MovementModel) TableName() string {
	return "variable_movements"
}

// ToEntity converts a MovementModel to a domain VariableMovement entity.
func (m *MovementModel) ToEntity() *entity.VariableMovement {
	return &entity.VariableMovement{
		ID:                   m.ID,
		Type:                 entity.MovementType(m.Type),
		Category:             m.Category,
		Description:          m.Description,
		Date:                 m.Date,
		Amount:               m.Amount,
		AccountID:            m.AccountID,
		DestinationAccountID: m.DestinationAccountID,
		CreatedAt:            m.CreatedAt,
	}
}

// MovementFromEntity creates a MovementModel from a domain VariableMovement entity.
func MovementFromEntity(movement *entity.VariableMovement) *MovementModel {
	return &MovementModel{
		ID:                   movement.ID,
		Type:                 string(movement.Type),
		Category:             movement.Category,
		Description:          movement.Description,
		Date:                 movement.Date,
		Amount:               movement.Amount,
		AccountID:            movement.AccountID,
		DestinationAccountID: movement.DestinationAccountID,
		CreatedAt:            movement.CreatedAt,
	}
}
