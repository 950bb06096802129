// Package alert contains the due-date alert scheduler and its use cases.
package alert

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

const (
	// defaultHorizonDays is the forward cutoff: upcoming alerts further away
	// than this are suppressed. Overdue alerts are never suppressed, so a
	// forgotten December quota still surfaces in March.
	defaultHorizonDays = 45

	// Fixed expenses/income scan further back than installment obligations
	// so long-overdue monthly items keep surfacing.
	defaultFixedBackMonths       = 3
	defaultInstallmentBackMonths = 1

	forwardMonths = 1
)

// SchedulerConfig tunes the scan window of the alert scheduler.
type SchedulerConfig struct {
	HorizonDays           int
	FixedBackMonths       int
	InstallmentBackMonths int
}

// DefaultSchedulerConfig returns the scheduler configuration matching the
// observed product behavior.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		HorizonDays:           defaultHorizonDays,
		FixedBackMonths:       defaultFixedBackMonths,
		InstallmentBackMonths: defaultInstallmentBackMonths,
	}
}

// ComputeAlerts walks a window of calendar months around today and produces
// the deduplicated, prioritized list of due/overdue/upcoming alerts for the
// given obligations. Today is injected explicitly; the scheduler never reads
// the wall clock itself.
func ComputeAlerts(today time.Time, obligations []*entity.Obligation) []entity.Alert {
	return ComputeAlertsWithConfig(DefaultSchedulerConfig(), today, obligations)
}

// ComputeAlertsWithConfig is ComputeAlerts with an explicit window configuration.
func ComputeAlertsWithConfig(cfg SchedulerConfig, today time.Time, obligations []*entity.Obligation) []entity.Alert {
	today = valueobject.Midnight(today)

	var alerts []entity.Alert
	for _, o := range obligations {
		// Fully settled installment obligations never alert.
		if o.IsInstallment() && !o.PendingBalance.IsPositive() {
			continue
		}

		if o.PaymentMode == entity.PaymentModeLump {
			if a, ok := lumpAlert(today, o); ok {
				alerts = append(alerts, a)
			}
			continue
		}

		alerts = append(alerts, periodicAlerts(cfg, today, o)...)
	}

	// Most overdue first. The sort is stable so that period declaration
	// order (Q1 before Q2) breaks daysUntil ties.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntil < alerts[j].DaysUntil
	})

	return alerts
}

// periodicAlerts fans one recurring obligation out over the month window and
// the periods of its periodicity.
func periodicAlerts(cfg SchedulerConfig, today time.Time, o *entity.Obligation) []entity.Alert {
	backMonths := cfg.FixedBackMonths
	if o.IsInstallment() {
		backMonths = cfg.InstallmentBackMonths
	}

	periods := valueobject.PeriodsFor(o.Periodicity)
	creation := valueobject.Midnight(o.CreationDate)

	var alerts []entity.Alert
	for offset := -backMonths; offset <= forwardMonths; offset++ {
		// time.Date normalizes out-of-range months, handling year rollover.
		first := time.Date(today.Year(), today.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.Local)

		for _, p := range periods {
			due := valueobject.ClampedDate(first.Year(), first.Month(), o.DueDay(p))

			// Obligations never alert for periods that predate their existence.
			if due.Before(creation) {
				continue
			}

			monthID := valueobject.MonthID(first)
			if o.IsSettled(monthID, p.Key) {
				continue
			}

			daysUntil := valueobject.DaysUntil(today, due)

			// Horizon bounds future alerts only; overdue always shows.
			if daysUntil > cfg.HorizonDays {
				continue
			}

			alerts = append(alerts, entity.Alert{
				ObligationID:   o.ID,
				ObligationType: o.Type,
				Name:           o.Name,
				PeriodKey:      p.Key,
				PeriodLabel:    p.Label,
				MonthID:        monthID,
				Date:           due,
				DaysUntil:      daysUntil,
				Severity:       entity.SeverityFor(daysUntil),
				Amount:         suggestedAmount(o),
			})
		}
	}
	return alerts
}

// lumpAlert emits the single explicit-date alert for a one-time obligation.
// Lump obligations bypass the period policy and the horizon filter: the one
// date they have is always worth showing until the balance reaches zero.
func lumpAlert(today time.Time, o *entity.Obligation) (entity.Alert, bool) {
	if o.LumpDueDate == nil {
		return entity.Alert{}, false
	}

	due := valueobject.Midnight(*o.LumpDueDate)
	daysUntil := valueobject.DaysUntil(today, due)

	return entity.Alert{
		ObligationID:   o.ID,
		ObligationType: o.Type,
		Name:           o.Name,
		PeriodKey:      valueobject.PeriodKeyLump,
		PeriodLabel:    "Pago Único",
		MonthID:        valueobject.MonthID(due),
		Date:           due,
		DaysUntil:      daysUntil,
		Severity:       entity.SeverityFor(daysUntil),
		Amount:         o.PendingBalance,
	}, true
}

// suggestedAmount is the settlement value hint carried on the alert: the
// fixed amount or installment amount when known, zero otherwise.
func suggestedAmount(o *entity.Obligation) decimal.Decimal {
	switch {
	case o.IsInstallment() && o.InstallmentAmount != nil:
		return *o.InstallmentAmount
	case !o.IsInstallment() && o.ValueMode == entity.ValueModeFixed && o.Amount != nil:
		return *o.Amount
	}
	return decimal.Zero
}
