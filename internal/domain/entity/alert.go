// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertSeverity classifies an alert for display by fixed daysUntil thresholds.
// It is presentation metadata, derived deterministically from DaysUntil.
type AlertSeverity string

const (
	AlertSeverityOverdue  AlertSeverity = "overdue"   // daysUntil < 0
	AlertSeverityDueToday AlertSeverity = "due_today" // daysUntil == 0
	AlertSeverityDueSoon  AlertSeverity = "due_soon"  // 1..5
	AlertSeverityUpcoming AlertSeverity = "upcoming"  // > 5
)

// SeverityFor derives the display tier from a daysUntil value.
func SeverityFor(daysUntil int) AlertSeverity {
	switch {
	case daysUntil < 0:
		return AlertSeverityOverdue
	case daysUntil == 0:
		return AlertSeverityDueToday
	case daysUntil <= 5:
		return AlertSeverityDueSoon
	default:
		return AlertSeverityUpcoming
	}
}

// Alert is one actionable due/overdue/upcoming entry produced by the
// scheduler for a specific obligation period instance.
type Alert struct {
	ObligationID   uuid.UUID
	ObligationType ObligationType
	Name           string
	PeriodKey      string
	PeriodLabel    string
	MonthID        string // YYYY-MM of the period instance being alerted
	Date           time.Time
	DaysUntil      int
	Severity       AlertSeverity
	// Amount is the suggested settlement value: the fixed amount or the
	// installment amount when known, zero for variable-value obligations.
	Amount decimal.Decimal
}
