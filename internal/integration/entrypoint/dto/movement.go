package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// RegisterMovementRequest represents the request body for registering a
// variable movement.
type RegisterMovementRequest struct {
	Type                 string          `json:"type" binding:"required,oneof=expense income transfer"`
	Category             string          `json:"category" binding:"required"`
	Description          string          `json:"description,omitempty"`
	Date                 string          `json:"date" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	AccountID            string          `json:"account_id" binding:"required,uuid"`
	DestinationAccountID *string         `json:"destination_account_id,omitempty" binding:"omitempty,uuid"`
}

// MovementResponse represents a single variable movement in API responses.
type MovementResponse struct {
	ID                   string          `json:"id"`
	Type                 string          `json:"type"`
	Category             string          `json:"category"`
	Description          string          `json:"description,omitempty"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	AccountID            string          `json:"account_id"`
	DestinationAccountID *string         `json:"destination_account_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// MovementListResponse represents the response for listing variable movements.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// ToMovementResponse converts a domain VariableMovement entity to a
// MovementResponse DTO.
func ToMovementResponse(m *entity.VariableMovement) MovementResponse {
	response := MovementResponse{
		ID:          m.ID.String(),
		Type:        string(m.Type),
		Category:    m.Category,
		Description: m.Description,
		Date:        m.Date.Format("2006-01-02"),
		Amount:      m.Amount,
		AccountID:   m.AccountID.String(),
		CreatedAt:   m.CreatedAt,
	}

	if m.DestinationAccountID != nil {
		idStr := m.DestinationAccountID.String()
		response.DestinationAccountID = &idStr
	}

	return response
}

// ToMovementListResponse converts a list of movements to a MovementListResponse.
func ToMovementListResponse(movements []*entity.VariableMovement) MovementListResponse {
	responses := make([]MovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ToMovementResponse(m)
	}
	return MovementListResponse{
		Movements: responses,
	}
}
