package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/usecase/obligation"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// CreateObligationRequest represents the request body for obligation creation.
// Recurring-fixed types use nominal_day, value_mode and amount; installment
// types use total_amount, periodicity, payment_mode and their mode-specific
// fields.
type CreateObligationRequest struct {
	Type         string  `json:"type" binding:"required,oneof=fixed_expense fixed_income payable receivable"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description,omitempty"`
	CreationDate *string `json:"creation_date,omitempty"`

	NominalDay int              `json:"nominal_day,omitempty"`
	ValueMode  string           `json:"value_mode,omitempty" binding:"omitempty,oneof=fixed variable"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`

	TotalAmount       decimal.Decimal  `json:"total_amount,omitempty"`
	Periodicity       string           `json:"periodicity,omitempty" binding:"omitempty,oneof=monthly biweekly decadal"`
	PaymentMode       string           `json:"payment_mode,omitempty" binding:"omitempty,oneof=installments lump"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
	LumpDueDate       *string          `json:"lump_due_date,omitempty"`

	SourceAccountID *string `json:"source_account_id,omitempty" binding:"omitempty,uuid"`
}

// SettleObligationRequest represents the request body for settling an
// obligation period.
type SettleObligationRequest struct {
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Date      string          `json:"date" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	MonthID   string          `json:"month_id,omitempty"`
	PeriodKey string          `json:"period_key,omitempty"`
}

// ObligationResponse represents a single obligation in API responses.
type ObligationResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CreationDate string `json:"creation_date"`

	NominalDay int              `json:"nominal_day,omitempty"`
	ValueMode  string           `json:"value_mode,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`

	TotalAmount       decimal.Decimal  `json:"total_amount"`
	PendingBalance    decimal.Decimal  `json:"pending_balance"`
	Periodicity       string           `json:"periodicity,omitempty"`
	PaymentMode       string           `json:"payment_mode,omitempty"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount,omitempty"`
	LumpDueDate       *string          `json:"lump_due_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObligationListResponse represents the response for listing obligations.
type ObligationListResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
}

// SettlementResponse represents one settlement history entry.
type SettlementResponse struct {
	ID           string          `json:"id"`
	ObligationID string          `json:"obligation_id"`
	MonthID      string          `json:"month_id"`
	PeriodKey    string          `json:"period_key"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	AccountID    string          `json:"account_id"`
}

// SettleObligationResponse represents the result of posting a settlement.
type SettleObligationResponse struct {
	Obligation ObligationResponse `json:"obligation"`
	Account    AccountResponse    `json:"account"`
	Settlement SettlementResponse `json:"settlement"`
}

// SettlementHistoryResponse represents an obligation's settlement history.
type SettlementHistoryResponse struct {
	Obligation  ObligationResponse   `json:"obligation"`
	Settlements []SettlementResponse `json:"settlements"`
}

// IsSettledResponse represents the answer to a period settlement query.
type IsSettledResponse struct {
	Settled bool `json:"settled"`
}

// ToObligationResponse converts a domain Obligation entity to an
// ObligationResponse DTO.
func ToObligationResponse(o *entity.Obligation) ObligationResponse {
	response := ObligationResponse{
		ID:             o.ID.String(),
		Type:           string(o.Type),
		Name:           o.Name,
		Description:    o.Description,
		CreationDate:   o.CreationDate.Format("2006-01-02"),
		NominalDay:     o.NominalDay,
		ValueMode:      string(o.ValueMode),
		Amount:         o.Amount,
		TotalAmount:    o.TotalAmount,
		PendingBalance: o.PendingBalance,
		Periodicity:    string(o.Periodicity),
		PaymentMode:    string(o.PaymentMode),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if o.InstallmentAmount != nil {
		response.InstallmentAmount = o.InstallmentAmount
	}
	if o.LumpDueDate != nil {
		dateStr := o.LumpDueDate.Format("2006-01-02")
		response.LumpDueDate = &dateStr
	}

	return response
}

// ToObligationListResponse converts a ListObligationsOutput to an
// ObligationListResponse.
func ToObligationListResponse(output *obligation.ListObligationsOutput) ObligationListResponse {
	obligations := make([]ObligationResponse, len(output.Obligations))
	for i, o := range output.Obligations {
		obligations[i] = ToObligationResponse(o)
	}
	return ObligationListResponse{
		Obligations: obligations,
	}
}

// ToSettlementResponse converts a domain Settlement entity to a
// SettlementResponse DTO.
func ToSettlementResponse(s *entity.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:           s.ID.String(),
		ObligationID: s.ObligationID.String(),
		MonthID:      s.MonthID,
		PeriodKey:    s.PeriodKey,
		Date:         s.Date.Format("2006-01-02"),
		Amount:       s.Amount,
		AccountID:    s.AccountID.String(),
	}
}

// ToSettlementHistoryResponse converts a GetHistoryOutput to a
// SettlementHistoryResponse.
func ToSettlementHistoryResponse(output *obligation.GetHistoryOutput) SettlementHistoryResponse {
	settlements := make([]SettlementResponse, len(output.Settlements))
	for i := range output.Settlements {
		settlements[i] = ToSettlementResponse(&output.Settlements[i])
	}
	return SettlementHistoryResponse{
		Obligation:  ToObligationResponse(output.Obligation),
		Settlements: settlements,
	}
}
