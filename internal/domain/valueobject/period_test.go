package valueobject

import "testing"

func TestPeriodsFor(t *testing.T) {
	t.Run("monthly has a single slot", func(t *testing.T) {
		periods := PeriodsFor(PeriodicityMonthly)
		if len(periods) != 1 {
			t.Fatalf("expected 1 period, got %d", len(periods))
		}
		if periods[0].Key != PeriodKeyMonthly {
			t.Errorf("expected key %s, got %s", PeriodKeyMonthly, periods[0].Key)
		}
		if periods[0].NominalDay != 0 {
			t.Errorf("monthly slot must defer the day to the obligation, got %d", periods[0].NominalDay)
		}
	})

	t.Run("biweekly fans out to days 15 and 30", func(t *testing.T) {
		periods := PeriodsFor(PeriodicityBiweekly)
		if len(periods) != 2 {
			t.Fatalf("expected 2 periods, got %d", len(periods))
		}
		if periods[0].Key != "Q1" || periods[0].NominalDay != 15 {
			t.Errorf("unexpected first period %+v", periods[0])
		}
		if periods[1].Key != "Q2" || periods[1].NominalDay != 30 {
			t.Errorf("unexpected second period %+v", periods[1])
		}
	})

	t.Run("decadal fans out to days 10, 20 and 30", func(t *testing.T) {
		periods := PeriodsFor(PeriodicityDecadal)
		if len(periods) != 3 {
			t.Fatalf("expected 3 periods, got %d", len(periods))
		}
		wantDays := []int{10, 20, 30}
		wantKeys := []string{"D1", "D2", "D3"}
		for i, p := range periods {
			if p.NominalDay != wantDays[i] || p.Key != wantKeys[i] {
				t.Errorf("period %d = %+v, want key %s day %d", i, p, wantKeys[i], wantDays[i])
			}
		}
	})
}

func TestIsValidPeriodicity(t *testing.T) {
	for _, p := range []Periodicity{PeriodicityMonthly, PeriodicityBiweekly, PeriodicityDecadal} {
		if !IsValidPeriodicity(p) {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if IsValidPeriodicity("weekly") {
		t.Error("expected 'weekly' to be invalid")
	}
}
