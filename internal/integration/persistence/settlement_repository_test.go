package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
	"github.com/finanzas-app/backend/internal/integration/persistence/model"
)

type settlementTestFixture struct {
	db         *settlementTestDB
	account    *entity.Account
	obligation *entity.Obligation
}

type settlementTestDB struct {
	accountRepo    *accountRepository
	obligationRepo *obligationRepository
	poster         *settlementRepository
}

func newSettlementTestFixture(t *testing.T) *settlementTestFixture {
	t.Helper()

	db := newTestDB(t)
	ctx := context.Background()

	accountRepo := NewAccountRepository(db).(*accountRepository)
	obligationRepo := NewObligationRepository(db).(*obligationRepository)
	poster := NewSettlementRepository(db).(*settlementRepository)

	account := entity.NewAccount("Bancolombia", entity.AccountCategoryBank, "COP", decimal.NewFromInt(500))
	if err := accountRepo.Create(ctx, account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	installment := decimal.NewFromInt(200)
	obligation := entity.NewInstallmentObligation(
		entity.ObligationTypePayable,
		"Juan",
		"Prestamo personal",
		decimal.NewFromInt(1000),
		valueobject.PeriodicityMonthly,
		entity.PaymentModeInstallments,
		15,
		&installment,
		nil,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
	)
	if err := obligationRepo.Create(ctx, obligation); err != nil {
		t.Fatalf("failed to create obligation: %v", err)
	}

	return &settlementTestFixture{
		db: &settlementTestDB{
			accountRepo:    accountRepo,
			obligationRepo: obligationRepo,
			poster:         poster,
		},
		account:    account,
		obligation: obligation,
	}
}

// applyPayment mutates the fixture entities the way the settlement use case
// does before handing them to the poster.
func (f *settlementTestFixture) applyPayment(amount decimal.Decimal) (*entity.Transaction, *entity.Settlement) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	now := time.Now().UTC()

	f.account.Balance = f.account.Balance.Sub(amount)
	f.account.UpdatedAt = now

	settlement := &entity.Settlement{
		ID:           uuid.New(),
		ObligationID: f.obligation.ID,
		MonthID:      "2026-03",
		PeriodKey:    valueobject.PeriodKeyMonthly,
		Date:         date,
		Amount:       amount,
		AccountID:    f.account.ID,
	}
	f.obligation.RecordSettlement(*settlement)
	f.obligation.UpdatedAt = now

	transaction := &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   f.account.ID,
		Date:        date,
		Kind:        entity.TransactionKindExpense,
		Description: "Pago deuda: Juan",
		Amount:      amount,
		CreatedAt:   now,
	}

	return transaction, settlement
}

func TestPostSettlement_CommitsAllFourEffects(t *testing.T) {
	f := newSettlementTestFixture(t)
	ctx := context.Background()

	transaction, settlement := f.applyPayment(decimal.NewFromInt(200))

	if err := f.db.poster.PostSettlement(ctx, f.account, transaction, f.obligation, settlement); err != nil {
		t.Fatalf("PostSettlement failed: %v", err)
	}

	account, err := f.db.accountRepo.FindByIDWithTransactions(ctx, f.account.ID)
	if err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("account balance = %s, want 300", account.Balance)
	}
	if len(account.Transactions) != 2 {
		t.Fatalf("transaction count = %d, want 2 (initial balance + payment)", len(account.Transactions))
	}

	obligation, err := f.db.obligationRepo.FindByID(ctx, f.obligation.ID)
	if err != nil {
		t.Fatalf("failed to reload obligation: %v", err)
	}
	if !obligation.PendingBalance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("pending balance = %s, want 800", obligation.PendingBalance)
	}
	if len(obligation.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(obligation.History))
	}
	if !obligation.IsSettled("2026-03", valueobject.PeriodKeyMonthly) {
		t.Error("expected 2026-03/M1 to be settled after posting")
	}
}

func TestPostSettlement_FailureRollsBackEverything(t *testing.T) {
	f := newSettlementTestFixture(t)
	ctx := context.Background()

	transaction, settlement := f.applyPayment(decimal.NewFromInt(200))

	// Pre-seed a row with the settlement's primary key so the third write of
	// the transaction fails, after the account effects were already applied.
	conflicting := *settlement
	conflicting.Amount = decimal.NewFromInt(1)
	if err := f.db.poster.db.Create(model.SettlementFromEntity(&conflicting)).Error; err != nil {
		t.Fatalf("failed to seed conflicting settlement: %v", err)
	}

	err := f.db.poster.PostSettlement(ctx, f.account, transaction, f.obligation, settlement)
	if err == nil {
		t.Fatal("expected PostSettlement to fail on duplicate settlement key")
	}

	account, err := f.db.accountRepo.FindByIDWithTransactions(ctx, f.account.ID)
	if err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("account balance = %s, want 500 after rollback", account.Balance)
	}
	if len(account.Transactions) != 1 {
		t.Errorf("transaction count = %d, want 1 after rollback", len(account.Transactions))
	}

	obligation, err := f.db.obligationRepo.FindByID(ctx, f.obligation.ID)
	if err != nil {
		t.Fatalf("failed to reload obligation: %v", err)
	}
	if !obligation.PendingBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("pending balance = %s, want 1000 after rollback", obligation.PendingBalance)
	}
}

func TestPostSettlement_SequentialPaymentsAccumulateHistory(t *testing.T) {
	f := newSettlementTestFixture(t)
	ctx := context.Background()

	transaction, settlement := f.applyPayment(decimal.NewFromInt(200))
	if err := f.db.poster.PostSettlement(ctx, f.account, transaction, f.obligation, settlement); err != nil {
		t.Fatalf("first PostSettlement failed: %v", err)
	}

	// Second payment against a later period.
	date := time.Date(2026, 4, 15, 0, 0, 0, 0, time.Local)
	f.account.Balance = f.account.Balance.Sub(decimal.NewFromInt(200))
	second := &entity.Settlement{
		ID:           uuid.New(),
		ObligationID: f.obligation.ID,
		MonthID:      "2026-04",
		PeriodKey:    valueobject.PeriodKeyMonthly,
		Date:         date,
		Amount:       decimal.NewFromInt(200),
		AccountID:    f.account.ID,
	}
	f.obligation.RecordSettlement(*second)
	secondTxn := &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   f.account.ID,
		Date:        date,
		Kind:        entity.TransactionKindExpense,
		Description: "Pago deuda: Juan",
		Amount:      decimal.NewFromInt(200),
		CreatedAt:   time.Now().UTC(),
	}
	if err := f.db.poster.PostSettlement(ctx, f.account, secondTxn, f.obligation, second); err != nil {
		t.Fatalf("second PostSettlement failed: %v", err)
	}

	obligation, err := f.db.obligationRepo.FindByID(ctx, f.obligation.ID)
	if err != nil {
		t.Fatalf("failed to reload obligation: %v", err)
	}
	if !obligation.PendingBalance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("pending balance = %s, want 600", obligation.PendingBalance)
	}
	if len(obligation.History) != 2 {
		t.Errorf("history length = %d, want 2", len(obligation.History))
	}
	if obligation.History[0].MonthID != "2026-03" || obligation.History[1].MonthID != "2026-04" {
		t.Errorf("history not ordered by date: %s, %s", obligation.History[0].MonthID, obligation.History[1].MonthID)
	}
}
