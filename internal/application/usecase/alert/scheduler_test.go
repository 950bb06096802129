package alert

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func fixedExpense(name string, nominalDay int, amount int64, creation time.Time) *entity.Obligation {
	value := decimal.NewFromInt(amount)
	return entity.NewFixedObligation(
		entity.ObligationTypeFixedExpense,
		name,
		"",
		nominalDay,
		entity.ValueModeFixed,
		&value,
		creation,
	)
}

func installmentPayable(name string, periodicity valueobject.Periodicity, nominalDay int, total int64, creation time.Time) *entity.Obligation {
	return entity.NewInstallmentObligation(
		entity.ObligationTypePayable,
		name,
		"",
		decimal.NewFromInt(total),
		periodicity,
		entity.PaymentModeInstallments,
		nominalDay,
		nil,
		nil,
		creation,
	)
}

func lumpPayable(name string, total int64, dueDate, creation time.Time) *entity.Obligation {
	return entity.NewInstallmentObligation(
		entity.ObligationTypePayable,
		name,
		"",
		decimal.NewFromInt(total),
		valueobject.PeriodicityMonthly,
		entity.PaymentModeLump,
		0,
		nil,
		&dueDate,
		creation,
	)
}

func alertFor(t *testing.T, alerts []entity.Alert, monthID, periodKey string) entity.Alert {
	t.Helper()
	for _, a := range alerts {
		if a.MonthID == monthID && a.PeriodKey == periodKey {
			return a
		}
	}
	t.Fatalf("no alert for (%s, %s) in %d alerts", monthID, periodKey, len(alerts))
	return entity.Alert{}
}

func hasAlert(alerts []entity.Alert, monthID, periodKey string) bool {
	for _, a := range alerts {
		if a.MonthID == monthID && a.PeriodKey == periodKey {
			return true
		}
	}
	return false
}

func TestComputeAlerts_MonthlyFixedWindow(t *testing.T) {
	today := date(2026, time.March, 10)
	o := fixedExpense("Arriendo", 10, 800, date(2025, time.January, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	// Fixed obligations scan three months back and one forward.
	wantMonths := []string{"2025-12", "2026-01", "2026-02", "2026-03", "2026-04"}
	if len(alerts) != len(wantMonths) {
		t.Fatalf("expected %d alerts, got %d", len(wantMonths), len(alerts))
	}
	for _, m := range wantMonths {
		if !hasAlert(alerts, m, valueobject.PeriodKeyMonthly) {
			t.Errorf("missing alert for month %s", m)
		}
	}

	// Sorted ascending by daysUntil: December first, April last.
	if alerts[0].MonthID != "2025-12" {
		t.Errorf("first alert month = %s, want 2025-12", alerts[0].MonthID)
	}
	if alerts[len(alerts)-1].MonthID != "2026-04" {
		t.Errorf("last alert month = %s, want 2026-04", alerts[len(alerts)-1].MonthID)
	}

	todayAlert := alertFor(t, alerts, "2026-03", valueobject.PeriodKeyMonthly)
	if todayAlert.DaysUntil != 0 || todayAlert.Severity != entity.AlertSeverityDueToday {
		t.Errorf("march alert = daysUntil %d severity %s, want 0/due_today", todayAlert.DaysUntil, todayAlert.Severity)
	}
	if !todayAlert.Amount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("suggested amount = %s, want 800", todayAlert.Amount)
	}
}

func TestComputeAlerts_InstallmentWindowIsShorter(t *testing.T) {
	today := date(2026, time.March, 10)
	o := installmentPayable("Banco", valueobject.PeriodicityMonthly, 10, 5000, date(2025, time.January, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	// Installments scan one month back, not three.
	if hasAlert(alerts, "2026-01", valueobject.PeriodKeyMonthly) {
		t.Error("installment window must not reach January")
	}
	wantMonths := []string{"2026-02", "2026-03", "2026-04"}
	if len(alerts) != len(wantMonths) {
		t.Fatalf("expected %d alerts, got %d", len(wantMonths), len(alerts))
	}
	for _, m := range wantMonths {
		if !hasAlert(alerts, m, valueobject.PeriodKeyMonthly) {
			t.Errorf("missing alert for month %s", m)
		}
	}
}

func TestComputeAlerts_BiweeklyFanOutAndClamping(t *testing.T) {
	today := date(2026, time.March, 10)
	o := installmentPayable("Cooperativa", valueobject.PeriodicityBiweekly, 0, 3000, date(2025, time.December, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	// February's Q2 slot nominates day 30; 2026 February ends on the 28th.
	febQ2 := alertFor(t, alerts, "2026-02", "Q2")
	if febQ2.Date.Day() != 28 {
		t.Errorf("february Q2 due day = %d, want 28 (clamped)", febQ2.Date.Day())
	}
	if febQ2.DaysUntil != -10 || febQ2.Severity != entity.AlertSeverityOverdue {
		t.Errorf("february Q2 = daysUntil %d severity %s, want -10/overdue", febQ2.DaysUntil, febQ2.Severity)
	}

	marQ1 := alertFor(t, alerts, "2026-03", "Q1")
	if marQ1.DaysUntil != 5 || marQ1.Severity != entity.AlertSeverityDueSoon {
		t.Errorf("march Q1 = daysUntil %d severity %s, want 5/due_soon", marQ1.DaysUntil, marQ1.Severity)
	}

	// April 30 is 51 days out, beyond the 45-day horizon.
	if hasAlert(alerts, "2026-04", "Q2") {
		t.Error("april Q2 must be suppressed by the horizon")
	}
	if !hasAlert(alerts, "2026-04", "Q1") {
		t.Error("april Q1 (36 days out) must be within the horizon")
	}
}

func TestComputeAlerts_SettledPeriodsAreSkipped(t *testing.T) {
	today := date(2026, time.March, 10)
	o := fixedExpense("Internet", 10, 80, date(2026, time.January, 1))
	o.RecordSettlement(entity.Settlement{MonthID: "2026-03", PeriodKey: "M1", Amount: decimal.NewFromInt(80)})

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	if hasAlert(alerts, "2026-03", valueobject.PeriodKeyMonthly) {
		t.Error("settled march period must not alert")
	}
	if !hasAlert(alerts, "2026-02", valueobject.PeriodKeyMonthly) {
		t.Error("unsettled february period must still alert")
	}
}

func TestComputeAlerts_CreationDateFloor(t *testing.T) {
	today := date(2026, time.March, 10)
	o := fixedExpense("Gimnasio", 10, 60, date(2026, time.February, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	for _, m := range []string{"2025-12", "2026-01"} {
		if hasAlert(alerts, m, valueobject.PeriodKeyMonthly) {
			t.Errorf("month %s predates creation and must not alert", m)
		}
	}
	if !hasAlert(alerts, "2026-02", valueobject.PeriodKeyMonthly) {
		t.Error("creation month period on/after creation must alert")
	}
}

func TestComputeAlerts_HorizonSuppressesFarFuture(t *testing.T) {
	today := date(2026, time.March, 1)
	o := fixedExpense("Seguro", 31, 120, date(2025, time.January, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	// March 31 is 30 days out and alerts; April's clamped day 30 lands 60
	// days out and is cut by the horizon.
	if !hasAlert(alerts, "2026-03", valueobject.PeriodKeyMonthly) {
		t.Error("march due date within horizon must alert")
	}
	if hasAlert(alerts, "2026-04", valueobject.PeriodKeyMonthly) {
		t.Error("april due date beyond horizon must be suppressed")
	}
}

func TestComputeAlerts_OverdueNeverSuppressed(t *testing.T) {
	// A December quota surfaces in March even though it is far outside any
	// forward horizon.
	today := date(2026, time.March, 10)
	o := fixedExpense("Agua", 5, 40, date(2025, time.January, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{o})

	dec := alertFor(t, alerts, "2025-12", valueobject.PeriodKeyMonthly)
	if dec.DaysUntil >= 0 || dec.Severity != entity.AlertSeverityOverdue {
		t.Errorf("december alert = daysUntil %d severity %s, want overdue", dec.DaysUntil, dec.Severity)
	}
}

func TestComputeAlerts_LumpBypassesHorizonAndFloor(t *testing.T) {
	today := date(2026, time.March, 10)

	t.Run("far-future lump date still alerts", func(t *testing.T) {
		o := lumpPayable("Carlos", 900, date(2026, time.June, 30), date(2026, time.January, 1))
		alerts := ComputeAlerts(today, []*entity.Obligation{o})

		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		a := alerts[0]
		if a.PeriodKey != valueobject.PeriodKeyLump {
			t.Errorf("period key = %s, want %s", a.PeriodKey, valueobject.PeriodKeyLump)
		}
		if a.DaysUntil != 112 {
			t.Errorf("daysUntil = %d, want 112", a.DaysUntil)
		}
		if !a.Amount.Equal(decimal.NewFromInt(900)) {
			t.Errorf("amount = %s, want the pending balance", a.Amount)
		}
	})

	t.Run("settled lump emits nothing", func(t *testing.T) {
		o := lumpPayable("Carlos", 900, date(2026, time.June, 30), date(2026, time.January, 1))
		o.RecordSettlement(entity.Settlement{
			MonthID:   "2026-06",
			PeriodKey: valueobject.PeriodKeyLump,
			Amount:    decimal.NewFromInt(900),
		})

		if alerts := ComputeAlerts(today, []*entity.Obligation{o}); len(alerts) != 0 {
			t.Errorf("expected no alerts for a paid-off lump, got %d", len(alerts))
		}
	})
}

func TestComputeAlerts_PaidOffInstallmentEmitsNothing(t *testing.T) {
	today := date(2026, time.March, 10)
	o := installmentPayable("Banco", valueobject.PeriodicityMonthly, 10, 100, date(2026, time.January, 1))
	o.RecordSettlement(entity.Settlement{MonthID: "2026-02", PeriodKey: "M1", Amount: decimal.NewFromInt(100)})

	if alerts := ComputeAlerts(today, []*entity.Obligation{o}); len(alerts) != 0 {
		t.Errorf("expected no alerts once pending balance is zero, got %d", len(alerts))
	}
}

func TestComputeAlerts_StableTieOrder(t *testing.T) {
	today := date(2026, time.March, 10)
	first := fixedExpense("Primero", 20, 10, date(2026, time.January, 1))
	second := fixedExpense("Segundo", 20, 10, date(2026, time.January, 1))

	alerts := ComputeAlerts(today, []*entity.Obligation{first, second})

	// Same due dates throughout: input order must be preserved within each
	// daysUntil tie.
	var names []string
	for _, a := range alerts {
		if a.MonthID == "2026-03" {
			names = append(names, a.Name)
		}
	}
	if len(names) != 2 || names[0] != "Primero" || names[1] != "Segundo" {
		t.Errorf("tie order = %v, want [Primero Segundo]", names)
	}
}

func TestComputeAlerts_VariableValueHasZeroAmount(t *testing.T) {
	today := date(2026, time.March, 10)
	o := entity.NewFixedObligation(
		entity.ObligationTypeFixedExpense,
		"Luz",
		"",
		15,
		entity.ValueModeVariable,
		nil,
		date(2026, time.February, 1),
	)

	alerts := ComputeAlerts(today, []*entity.Obligation{o})
	if len(alerts) == 0 {
		t.Fatal("expected alerts for a variable fixed expense")
	}
	for _, a := range alerts {
		if !a.Amount.IsZero() {
			t.Errorf("variable obligation amount = %s, want 0", a.Amount)
		}
	}
}

func TestComputeAlertsWithConfig_CustomWindow(t *testing.T) {
	today := date(2026, time.March, 10)
	o := fixedExpense("Arriendo", 10, 800, date(2025, time.January, 1))

	cfg := SchedulerConfig{HorizonDays: 10, FixedBackMonths: 1, InstallmentBackMonths: 1}
	alerts := ComputeAlertsWithConfig(cfg, today, []*entity.Obligation{o})

	// One month back, and April 10 (31 days out) beyond the narrowed horizon.
	wantMonths := []string{"2026-02", "2026-03"}
	if len(alerts) != len(wantMonths) {
		t.Fatalf("expected %d alerts, got %d", len(wantMonths), len(alerts))
	}
	for _, m := range wantMonths {
		if !hasAlert(alerts, m, valueobject.PeriodKeyMonthly) {
			t.Errorf("missing alert for month %s", m)
		}
	}
}

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		daysUntil int
		want      entity.AlertSeverity
	}{
		{-30, entity.AlertSeverityOverdue},
		{-1, entity.AlertSeverityOverdue},
		{0, entity.AlertSeverityDueToday},
		{1, entity.AlertSeverityDueSoon},
		{5, entity.AlertSeverityDueSoon},
		{6, entity.AlertSeverityUpcoming},
		{45, entity.AlertSeverityUpcoming},
	}

	for _, c := range cases {
		if got := entity.SeverityFor(c.daysUntil); got != c.want {
			t.Errorf("SeverityFor(%d) = %s, want %s", c.daysUntil, got, c.want)
		}
	}
}
