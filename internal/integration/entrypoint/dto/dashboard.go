package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse represents the aggregated dashboard figures.
type DashboardSummaryResponse struct {
	TotalBalance         decimal.Decimal `json:"total_balance"`
	ProjectedBalance     decimal.Decimal `json:"projected_balance"`
	PendingFixedIncome   decimal.Decimal `json:"pending_fixed_income"`
	PendingFixedExpenses decimal.Decimal `json:"pending_fixed_expenses"`
	TotalPayableDebt     decimal.Decimal `json:"total_payable_debt"`
	TotalReceivableDebt  decimal.Decimal `json:"total_receivable_debt"`
	AccountCount         int             `json:"account_count"`
	ObligationCount      int             `json:"obligation_count"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to a
// DashboardSummaryResponse.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalBalance:         output.TotalBalance,
		ProjectedBalance:     output.ProjectedBalance,
		PendingFixedIncome:   output.PendingFixedIncome,
		PendingFixedExpenses: output.PendingFixedExpenses,
		TotalPayableDebt:     output.TotalPayableDebt,
		TotalReceivableDebt:  output.TotalReceivableDebt,
		AccountCount:         output.AccountCount,
		ObligationCount:      output.ObligationCount,
	}
}
