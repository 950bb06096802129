// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType represents the type of a variable movement.
type MovementType string

const (
	MovementTypeExpense  MovementType = "expense"
	MovementTypeIncome   MovementType = "income"
	MovementTypeTransfer MovementType = "transfer"
)

// VariableMovement represents a one-off income, expense or transfer between
// accounts, recorded outside the obligation scheduler.
type VariableMovement struct {
	ID                   uuid.UUID
	Type                 MovementType
	Category             string
	Description          string
	Date                 time.Time
	Amount               decimal.Decimal
	AccountID            uuid.UUID
	DestinationAccountID *uuid.UUID // transfers only
	CreatedAt            time.Time
}

// NewVariableMovement creates a new VariableMovement entity.
func NewVariableMovement(
	movementType MovementType,
	category, description string,
	date time.Time,
	amount decimal.Decimal,
	accountID uuid.UUID,
	destinationAccountID *uuid.UUID,
) *VariableMovement {
	return &VariableMovement{
		ID:                   uuid.New(),
		Type:                 movementType,
		Category:             category,
		Description:          description,
		Date:                 date,
		Amount:               amount,
		AccountID:            accountID,
		DestinationAccountID: destinationAccountID,
		CreatedAt:            time.Now().UTC(),
	}
}

// IsValidMovementType reports whether t is a supported movement type.
func IsValidMovementType(t MovementType) bool {
	return t == MovementTypeExpense || t == MovementTypeIncome || t == MovementTypeTransfer
}
