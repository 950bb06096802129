// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCategory represents the category of an account.
type AccountCategory string

const (
	AccountCategorySolidary   AccountCategory = "solidary"
	AccountCategoryBank       AccountCategory = "bank"
	AccountCategoryInvestment AccountCategory = "investment"
	AccountCategoryCash       AccountCategory = "cash"
)

// TransactionKind represents the kind of an account transaction.
type TransactionKind string

const (
	TransactionKindIncome         TransactionKind = "income"
	TransactionKindExpense        TransactionKind = "expense"
	TransactionKindInitialBalance TransactionKind = "initial_balance"
)

// Transaction represents a single entry in an account's movement log.
// Amounts are always positive; the sign is implied by the kind.
// Transactions are immutable once appended.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Date        time.Time
	Kind        TransactionKind
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// SignedAmount returns the amount with the sign implied by the kind.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Account represents a money-holding account in the FinanzasApp system.
// Invariant: Balance equals the signed sum of Transactions. The balance is
// mutated only by posting settlements and variable movements.
type Account struct {
	ID           uuid.UUID
	Name         string
	Category     AccountCategory
	Currency     string
	Balance      decimal.Decimal
	Transactions []Transaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates a new Account entity with its opening balance recorded
// as an initial-balance transaction.
func NewAccount(name string, category AccountCategory, currency string, balance decimal.Decimal) *Account {
	now := time.Now().UTC()
	id := uuid.New()

	return &Account{
		ID:       id,
		Name:     name,
		Category: category,
		Currency: currency,
		Balance:  balance,
		Transactions: []Transaction{
			{
				ID:          uuid.New(),
				AccountID:   id,
				Date:        now,
				Kind:        TransactionKindInitialBalance,
				Description: "Saldo inicial al crear la cuenta",
				Amount:      balance,
				CreatedAt:   now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidAccountCategory reports whether c is a supported account category.
func IsValidAccountCategory(c AccountCategory) bool {
	switch c {
	case AccountCategorySolidary, AccountCategoryBank, AccountCategoryInvestment, AccountCategoryCash:
		return true
	}
	return false
}
