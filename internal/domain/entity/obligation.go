// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// ObligationType represents the kind of financial obligation.
type ObligationType string

const (
	ObligationTypeFixedExpense ObligationType = "fixed_expense"
	ObligationTypeFixedIncome  ObligationType = "fixed_income"
	ObligationTypePayable      ObligationType = "payable"
	ObligationTypeReceivable   ObligationType = "receivable"
)

// ValueMode represents how the amount of a recurring-fixed obligation is
// determined: a fixed amount, or entered by the user at settlement time.
type ValueMode string

const (
	ValueModeFixed    ValueMode = "fixed"
	ValueModeVariable ValueMode = "variable"
)

// PaymentMode represents how an installment obligation is paid off.
type PaymentMode string

const (
	PaymentModeInstallments PaymentMode = "installments"
	PaymentModeLump         PaymentMode = "lump"
)

// Settlement is one entry of an obligation's settlement history: a payment or
// receipt recorded against a specific (monthID, periodKey) pair, which is the
// uniqueness key for "already settled this period". Entries are append-only
// and removed only when the obligation itself is deleted.
type Settlement struct {
	ID           uuid.UUID
	ObligationID uuid.UUID
	MonthID      string // YYYY-MM
	PeriodKey    string
	Date         time.Time
	Amount       decimal.Decimal
	AccountID    uuid.UUID
}

// Obligation unifies fixed expenses, fixed income, installment debts
// (payables) and installment credits (receivables). The creation date is the
// floor below which no period ever comes due.
type Obligation struct {
	ID           uuid.UUID
	Type         ObligationType
	Name         string // counterparty or label
	Description  string
	CreationDate time.Time

	// Recurring-fixed fields (fixed_expense, fixed_income). Periodicity is
	// monthly only for these types; NominalDay supplies the due day.
	NominalDay int
	ValueMode  ValueMode
	Amount     *decimal.Decimal // nil when ValueMode is variable

	// Installment fields (payable, receivable).
	TotalAmount       decimal.Decimal
	PendingBalance    decimal.Decimal
	Periodicity       valueobject.Periodicity
	PaymentMode       PaymentMode
	InstallmentAmount *decimal.Decimal // set for installments mode
	LumpDueDate       *time.Time       // set for lump mode

	History []Settlement

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInstallment reports whether the obligation is an installment type
// (payable or receivable) with a capped pending balance.
func (o *Obligation) IsInstallment() bool {
	return o.Type == ObligationTypePayable || o.Type == ObligationTypeReceivable
}

// IsOutflow reports whether settling the obligation takes money out of an
// account. Direction is a property of the obligation type, never of the
// history records.
func (o *Obligation) IsOutflow() bool {
	return o.Type == ObligationTypeFixedExpense || o.Type == ObligationTypePayable
}

// DueDay returns the nominal day-of-month for a period definition, falling
// back to the obligation's own nominal day for the monthly slot.
func (o *Obligation) DueDay(p valueobject.PeriodDefinition) int {
	if p.NominalDay > 0 {
		return p.NominalDay
	}
	return o.NominalDay
}

// IsSettled reports whether the history contains an entry for the given
// (monthID, periodKey) pair. Linear scan; histories are small and bounded by
// calendar time.
func (o *Obligation) IsSettled(monthID, periodKey string) bool {
	for i := range o.History {
		if o.History[i].MonthID == monthID && o.History[i].PeriodKey == periodKey {
			return true
		}
	}
	return false
}

// RecordSettlement appends a settlement entry and, for installment types,
// decrements the pending balance, clamping at zero. This is a pure mutation
// primitive: overpayment is rejected at the caller boundary, not here.
func (o *Obligation) RecordSettlement(s Settlement) {
	o.History = append(o.History, s)
	if o.IsInstallment() {
		o.PendingBalance = o.PendingBalance.Sub(s.Amount)
		if o.PendingBalance.IsNegative() {
			o.PendingBalance = decimal.Zero
		}
	}
}

// NewFixedObligation creates a recurring-fixed obligation (expense or income).
// Amount must be nil when valueMode is variable.
func NewFixedObligation(
	obligationType ObligationType,
	name, description string,
	nominalDay int,
	valueMode ValueMode,
	amount *decimal.Decimal,
	creationDate time.Time,
) *Obligation {
	now := time.Now().UTC()

	return &Obligation{
		ID:           uuid.New(),
		Type:         obligationType,
		Name:         name,
		Description:  description,
		CreationDate: creationDate,
		NominalDay:   nominalDay,
		ValueMode:    valueMode,
		Amount:       amount,
		Periodicity:  valueobject.PeriodicityMonthly,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewInstallmentObligation creates an installment obligation (payable or
// receivable). The pending balance starts at the total amount.
func NewInstallmentObligation(
	obligationType ObligationType,
	name, description string,
	totalAmount decimal.Decimal,
	periodicity valueobject.Periodicity,
	paymentMode PaymentMode,
	nominalDay int,
	installmentAmount *decimal.Decimal,
	lumpDueDate *time.Time,
	creationDate time.Time,
) *Obligation {
	now := time.Now().UTC()

	return &Obligation{
		ID:                uuid.New(),
		Type:              obligationType,
		Name:              name,
		Description:       description,
		CreationDate:      creationDate,
		TotalAmount:       totalAmount,
		PendingBalance:    totalAmount,
		Periodicity:       periodicity,
		PaymentMode:       paymentMode,
		NominalDay:        nominalDay,
		InstallmentAmount: installmentAmount,
		LumpDueDate:       lumpDueDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsValidObligationType reports whether t is a supported obligation type.
func IsValidObligationType(t ObligationType) bool {
	switch t {
	case ObligationTypeFixedExpense, ObligationTypeFixedIncome, ObligationTypePayable, ObligationTypeReceivable:
		return true
	}
	return false
}
