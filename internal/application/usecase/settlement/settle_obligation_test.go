package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// fakeObligationRepo serves a fixed obligation set from memory.
type fakeObligationRepo struct {
	obligations map[uuid.UUID]*entity.Obligation
}

func (r *fakeObligationRepo) Create(_ context.Context, o *entity.Obligation) error {
	r.obligations[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) CreateWithDisbursement(_ context.Context, o *entity.Obligation, _ *entity.Account, _ *entity.Transaction) error {
	r.obligations[o.ID] = o
	return nil
}

func (r *fakeObligationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Obligation, error) {
	o, ok := r.obligations[id]
	if !ok {
		return nil, domainerror.ErrObligationNotFound
	}
	return o, nil
}

func (r *fakeObligationRepo) FindAll(_ context.Context, _ *entity.ObligationType) ([]*entity.Obligation, error) {
	var out []*entity.Obligation
	for _, o := range r.obligations {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeObligationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.obligations, id)
	return nil
}

// fakeAccountRepo serves a fixed account set from memory.
type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.accounts[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) FindByIDWithTransactions(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

// fakePoster records posted settlements and can simulate storage failure.
type fakePoster struct {
	posted []*entity.Settlement
	fail   error
}

func (p *fakePoster) PostSettlement(_ context.Context, _ *entity.Account, _ *entity.Transaction, _ *entity.Obligation, s *entity.Settlement) error {
	if p.fail != nil {
		return p.fail
	}
	p.posted = append(p.posted, s)
	return nil
}

type settleFixture struct {
	useCase    *SettleObligationUseCase
	obligation *entity.Obligation
	account    *entity.Account
	poster     *fakePoster
}

func newSettleFixture(t *testing.T, obligation *entity.Obligation, balance int64) *settleFixture {
	t.Helper()

	account := entity.NewAccount("Bancolombia", entity.AccountCategoryBank, "COP", decimal.NewFromInt(balance))
	obligationRepo := &fakeObligationRepo{obligations: map[uuid.UUID]*entity.Obligation{obligation.ID: obligation}}
	accountRepo := &fakeAccountRepo{accounts: map[uuid.UUID]*entity.Account{account.ID: account}}
	poster := &fakePoster{}

	return &settleFixture{
		useCase:    NewSettleObligationUseCase(obligationRepo, accountRepo, poster),
		obligation: obligation,
		account:    account,
		poster:     poster,
	}
}

func newPayable(total int64) *entity.Obligation {
	return entity.NewInstallmentObligation(
		entity.ObligationTypePayable,
		"Banco",
		"",
		decimal.NewFromInt(total),
		valueobject.PeriodicityMonthly,
		entity.PaymentModeInstallments,
		10,
		nil,
		nil,
		time.Now(),
	)
}

func newFixedIncome(amount int64) *entity.Obligation {
	value := decimal.NewFromInt(amount)
	return entity.NewFixedObligation(
		entity.ObligationTypeFixedIncome,
		"Salario",
		"",
		28,
		entity.ValueModeFixed,
		&value,
		time.Now(),
	)
}

func TestSettleObligation_PayablePayment(t *testing.T) {
	f := newSettleFixture(t, newPayable(1000), 500)

	output, err := f.useCase.Execute(context.Background(), SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local),
		Amount:       decimal.NewFromInt(200),
		MonthID:      "2026-03",
		PeriodKey:    "M1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Account.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("account balance = %s, want 300", output.Account.Balance)
	}
	if !output.Obligation.PendingBalance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("pending balance = %s, want 800", output.Obligation.PendingBalance)
	}
	if !output.Obligation.IsSettled("2026-03", "M1") {
		t.Error("period must be recorded as settled")
	}
	if len(f.poster.posted) != 1 {
		t.Fatalf("expected 1 posted settlement, got %d", len(f.poster.posted))
	}
}

func TestSettleObligation_FixedIncomeCreditsAccount(t *testing.T) {
	f := newSettleFixture(t, newFixedIncome(900), 100)

	output, err := f.useCase.Execute(context.Background(), SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Date(2026, time.March, 28, 0, 0, 0, 0, time.Local),
		Amount:       decimal.NewFromInt(900),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Account.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("account balance = %s, want 1000", output.Account.Balance)
	}
	// Defaults: month of the date, monthly period slot.
	if output.Settlement.MonthID != "2026-03" || output.Settlement.PeriodKey != valueobject.PeriodKeyMonthly {
		t.Errorf("settlement key = (%s, %s), want (2026-03, M1)", output.Settlement.MonthID, output.Settlement.PeriodKey)
	}
}

func TestSettleObligation_Validation(t *testing.T) {
	t.Run("rejects non-positive amount", func(t *testing.T) {
		f := newSettleFixture(t, newPayable(1000), 500)

		_, err := f.useCase.Execute(context.Background(), SettleInput{
			ObligationID: f.obligation.ID,
			AccountID:    f.account.ID,
			Date:         time.Now(),
			Amount:       decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrInvalidSettlementAmount) {
			t.Errorf("expected ErrInvalidSettlementAmount, got %v", err)
		}
	})

	t.Run("rejects missing account reference", func(t *testing.T) {
		f := newSettleFixture(t, newPayable(1000), 500)

		_, err := f.useCase.Execute(context.Background(), SettleInput{
			ObligationID: f.obligation.ID,
			Date:         time.Now(),
			Amount:       decimal.NewFromInt(100),
		})
		if !errors.Is(err, domainerror.ErrMissingSettlementAccount) {
			t.Errorf("expected ErrMissingSettlementAccount, got %v", err)
		}
	})

	t.Run("rejects unknown obligation", func(t *testing.T) {
		f := newSettleFixture(t, newPayable(1000), 500)

		_, err := f.useCase.Execute(context.Background(), SettleInput{
			ObligationID: uuid.New(),
			AccountID:    f.account.ID,
			Date:         time.Now(),
			Amount:       decimal.NewFromInt(100),
		})
		if !errors.Is(err, domainerror.ErrObligationNotFound) {
			t.Errorf("expected ErrObligationNotFound, got %v", err)
		}
	})
}

func TestSettleObligation_DuplicatePeriodRejected(t *testing.T) {
	f := newSettleFixture(t, newPayable(1000), 500)

	input := SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local),
		Amount:       decimal.NewFromInt(100),
		MonthID:      "2026-03",
		PeriodKey:    "M1",
	}

	if _, err := f.useCase.Execute(context.Background(), input); err != nil {
		t.Fatalf("first settlement failed: %v", err)
	}

	_, err := f.useCase.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrPeriodAlreadySettled) {
		t.Errorf("expected ErrPeriodAlreadySettled, got %v", err)
	}

	// The rejection must leave the store untouched.
	if len(f.poster.posted) != 1 {
		t.Errorf("expected 1 posted settlement after duplicate, got %d", len(f.poster.posted))
	}
	if !f.account.Balance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("account balance = %s, want 400", f.account.Balance)
	}
}

func TestSettleObligation_ExtraPaymentsRepeatWithinMonth(t *testing.T) {
	f := newSettleFixture(t, newPayable(1000), 500)

	input := SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local),
		Amount:       decimal.NewFromInt(100),
		MonthID:      "2026-03",
		PeriodKey:    valueobject.PeriodKeyExtraPayment,
	}

	if _, err := f.useCase.Execute(context.Background(), input); err != nil {
		t.Fatalf("first extra payment failed: %v", err)
	}
	if _, err := f.useCase.Execute(context.Background(), input); err != nil {
		t.Fatalf("second extra payment failed: %v", err)
	}

	if !f.obligation.PendingBalance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("pending balance = %s, want 800", f.obligation.PendingBalance)
	}
	// Extra payments must not mark the regular monthly slot as settled.
	if f.obligation.IsSettled("2026-03", "M1") {
		t.Error("extra payments must not settle the monthly slot")
	}
}

func TestSettleObligation_InsufficientFunds(t *testing.T) {
	f := newSettleFixture(t, newPayable(1000), 50)

	_, err := f.useCase.Execute(context.Background(), SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Now(),
		Amount:       decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	if !f.account.Balance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("account balance changed on rejection: %s", f.account.Balance)
	}
	if len(f.obligation.History) != 0 {
		t.Error("history must stay empty on rejection")
	}
}

func TestSettleObligation_Overpayment(t *testing.T) {
	t.Run("strictly above tolerance is rejected", func(t *testing.T) {
		f := newSettleFixture(t, newPayable(100), 500)

		_, err := f.useCase.Execute(context.Background(), SettleInput{
			ObligationID: f.obligation.ID,
			AccountID:    f.account.ID,
			Date:         time.Now(),
			Amount:       decimal.NewFromFloat(100.11),
		})
		if !errors.Is(err, domainerror.ErrOverpayment) {
			t.Errorf("expected ErrOverpayment, got %v", err)
		}
	})

	t.Run("within tolerance posts and clamps at zero", func(t *testing.T) {
		f := newSettleFixture(t, newPayable(100), 500)

		output, err := f.useCase.Execute(context.Background(), SettleInput{
			ObligationID: f.obligation.ID,
			AccountID:    f.account.ID,
			Date:         time.Now(),
			Amount:       decimal.NewFromFloat(100.05),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Obligation.PendingBalance.IsZero() {
			t.Errorf("pending balance = %s, want 0", output.Obligation.PendingBalance)
		}
	})
}

func TestSettleObligation_PosterFailurePropagates(t *testing.T) {
	f := newSettleFixture(t, newPayable(1000), 500)
	f.poster.fail = errors.New("disk full")

	_, err := f.useCase.Execute(context.Background(), SettleInput{
		ObligationID: f.obligation.ID,
		AccountID:    f.account.ID,
		Date:         time.Now(),
		Amount:       decimal.NewFromInt(100),
	})
	if err == nil {
		t.Fatal("expected error from poster")
	}
}
