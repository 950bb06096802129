package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// AlertResponse represents a single due-date alert in API responses.
type AlertResponse struct {
	ObligationID   string          `json:"obligation_id"`
	ObligationType string          `json:"obligation_type"`
	Name           string          `json:"name"`
	PeriodKey      string          `json:"period_key"`
	PeriodLabel    string          `json:"period_label"`
	MonthID        string          `json:"month_id"`
	Date           string          `json:"date"`
	DaysUntil      int             `json:"days_until"`
	Severity       string          `json:"severity"`
	Amount         decimal.Decimal `json:"amount"`
}

// AlertListResponse represents the response for listing alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Count  int             `json:"count"`
}

// SendDigestResponse represents the result of sending an alert digest email.
type SendDigestResponse struct {
	AlertCount int    `json:"alert_count"`
	ProviderID string `json:"provider_id"`
}

// ToAlertResponse converts a domain Alert to an AlertResponse DTO.
func ToAlertResponse(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ObligationID:   a.ObligationID.String(),
		ObligationType: string(a.ObligationType),
		Name:           a.Name,
		PeriodKey:      a.PeriodKey,
		PeriodLabel:    a.PeriodLabel,
		MonthID:        a.MonthID,
		Date:           a.Date.Format("2006-01-02"),
		DaysUntil:      a.DaysUntil,
		Severity:       string(a.Severity),
		Amount:         a.Amount,
	}
}

// ToAlertListResponse converts a list of alerts to an AlertListResponse.
func ToAlertListResponse(alerts []entity.Alert) AlertListResponse {
	responses := make([]AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = ToAlertResponse(&alerts[i])
	}
	return AlertListResponse{
		Alerts: responses,
		Count:  len(responses),
	}
}
