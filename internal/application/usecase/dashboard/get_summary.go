// Package dashboard contains the summary use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Today time.Time
}

// GetSummaryOutput represents the aggregated dashboard figures.
type GetSummaryOutput struct {
	TotalBalance         decimal.Decimal
	ProjectedBalance     decimal.Decimal
	PendingFixedIncome   decimal.Decimal
	PendingFixedExpenses decimal.Decimal
	TotalPayableDebt     decimal.Decimal
	TotalReceivableDebt  decimal.Decimal
	AccountCount         int
	ObligationCount      int
}

// GetSummaryUseCase aggregates the headline figures for the dashboard. The
// projected balance is the total balance plus the current month's unsettled
// fixed income minus the current month's unsettled fixed expenses; only
// fixed-value obligations contribute, since variable ones have no amount
// until they are settled.
type GetSummaryUseCase struct {
	accountRepo    adapter.AccountRepository
	obligationRepo adapter.ObligationRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	accountRepo adapter.AccountRepository,
	obligationRepo adapter.ObligationRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		accountRepo:    accountRepo,
		obligationRepo: obligationRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}
	monthID := valueobject.MonthID(today)

	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	obligations, err := uc.obligationRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}

	out := &GetSummaryOutput{
		TotalBalance:         decimal.Zero,
		ProjectedBalance:     decimal.Zero,
		PendingFixedIncome:   decimal.Zero,
		PendingFixedExpenses: decimal.Zero,
		TotalPayableDebt:     decimal.Zero,
		TotalReceivableDebt:  decimal.Zero,
		AccountCount:         len(accounts),
		ObligationCount:      len(obligations),
	}

	for _, acc := range accounts {
		out.TotalBalance = out.TotalBalance.Add(acc.Balance)
	}

	for _, o := range obligations {
		switch o.Type {
		case entity.ObligationTypeFixedExpense:
			if o.ValueMode == entity.ValueModeFixed && o.Amount != nil && !o.IsSettled(monthID, valueobject.PeriodKeyMonthly) {
				out.PendingFixedExpenses = out.PendingFixedExpenses.Add(*o.Amount)
			}
		case entity.ObligationTypeFixedIncome:
			if o.ValueMode == entity.ValueModeFixed && o.Amount != nil && !o.IsSettled(monthID, valueobject.PeriodKeyMonthly) {
				out.PendingFixedIncome = out.PendingFixedIncome.Add(*o.Amount)
			}
		case entity.ObligationTypePayable:
			out.TotalPayableDebt = out.TotalPayableDebt.Add(o.PendingBalance)
		case entity.ObligationTypeReceivable:
			out.TotalReceivableDebt = out.TotalReceivableDebt.Add(o.PendingBalance)
		}
	}

	out.ProjectedBalance = out.TotalBalance.
		Add(out.PendingFixedIncome).
		Sub(out.PendingFixedExpenses)

	return out, nil
}
