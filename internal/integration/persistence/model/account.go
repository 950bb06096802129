// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(20);not null"`
	Currency  string          `gorm:"type:varchar(10);not null;default:'COP'"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Transactions []TransactionModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	transactions := make([]entity.Transaction, len(m.Transactions))
	for i, tm := range m.Transactions {
		transactions[i] = *tm.ToEntity()
	}

	return &entity.Account{
		ID:           m.ID,
		Name:         m.Name,
		Category:     entity.AccountCategory(m.Category),
		Currency:     m.Currency,
		Balance:      m.Balance,
		Transactions: transactions,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
// Transaction rows are not included; they are appended individually.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Category:  string(account.Category),
		Currency:  account.Currency,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// TransactionModel represents the account_transactions table in the database.
// Rows are append-only.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Kind        string          `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "account_transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Date:        m.Date,
		Kind:        entity.TransactionKind(m.Kind),
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		Date:        transaction.Date,
		Kind:        string(transaction.Kind),
		Description: transaction.Description,
		Amount:      transaction.Amount,
		CreatedAt:   transaction.CreatedAt,
	}
}
