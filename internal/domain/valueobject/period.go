// Package valueobject contains domain value objects for the FinanzasApp system.
package valueobject

// Periodicity represents how often a recurring obligation comes due.
type Periodicity string

const (
	PeriodicityMonthly  Periodicity = "monthly"
	PeriodicityBiweekly Periodicity = "biweekly" // "quincenal": days 15 and 30
	PeriodicityDecadal  Periodicity = "decadal"  // days 10, 20 and 30
)

// Period keys. PeriodKeyMonthly is the single monthly slot; the extra-payment
// key marks principal payments that settle no calendar period.
const (
	PeriodKeyMonthly      = "M1"
	PeriodKeyLump         = "UNICO"
	PeriodKeyExtraPayment = "ABONO_EXTRA"
)

// PeriodDefinition describes one due-date slice of a calendar month.
// NominalDay 0 means the day is supplied by the obligation, not the policy.
type PeriodDefinition struct {
	Key        string
	NominalDay int
	Label      string
}

var (
	monthlyPeriods = []PeriodDefinition{
		{Key: PeriodKeyMonthly, NominalDay: 0, Label: "Mensual"},
	}
	biweeklyPeriods = []PeriodDefinition{
		{Key: "Q1", NominalDay: 15, Label: "Quincena 1 (15)"},
		{Key: "Q2", NominalDay: 30, Label: "Quincena 2 (30)"},
	}
	decadalPeriods = []PeriodDefinition{
		{Key: "D1", NominalDay: 10, Label: "Década 1 (10)"},
		{Key: "D2", NominalDay: 20, Label: "Década 2 (20)"},
		{Key: "D3", NominalDay: 30, Label: "Década 3 (30)"},
	}
)

// PeriodsFor maps a periodicity to its period definitions for one calendar
// month. Declaration order (Q1 before Q2, etc.) is the tie-break order used
// by the alert scheduler when due dates coincide. Lump-sum obligations bypass
// this policy entirely and use their own explicit date.
func PeriodsFor(p Periodicity) []PeriodDefinition {
	switch p {
	case PeriodicityBiweekly:
		return biweeklyPeriods
	case PeriodicityDecadal:
		return decadalPeriods
	default:
		return monthlyPeriods
	}
}

// IsValidPeriodicity reports whether p is a supported periodicity.
func IsValidPeriodicity(p Periodicity) bool {
	return p == PeriodicityMonthly || p == PeriodicityBiweekly || p == PeriodicityDecadal
}
