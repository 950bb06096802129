// Package settlement contains the settlement posting use case.
package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
	domainerror "github.com/finanzas-app/backend/internal/domain/error"
	"github.com/finanzas-app/backend/internal/domain/valueobject"
)

// overpaymentTolerance absorbs sub-cent float drift from legacy data. A
// settlement strictly above pending balance plus this tolerance is rejected;
// anything at or below it posts, and the pending balance clamps at zero.
var overpaymentTolerance = decimal.NewFromFloat(0.1)

// SettleInput represents a settlement request: which obligation period to
// settle, from which account, on what date and for how much. The period being
// paid is part of the request; there is no ambient selection state.
type SettleInput struct {
	ObligationID uuid.UUID
	AccountID    uuid.UUID
	Date         time.Time
	Amount       decimal.Decimal
	// MonthID identifies the period instance being settled (YYYY-MM).
	// Defaults to the month of Date when empty.
	MonthID string
	// PeriodKey identifies the period slot. Defaults to the monthly slot for
	// recurring obligations and the lump key for lump obligations.
	PeriodKey string
}

// SettleOutput represents the result of a settlement.
type SettleOutput struct {
	Obligation *entity.Obligation
	Account    *entity.Account
	Settlement *entity.Settlement
}

// SettleObligationUseCase applies a settlement (payment or receipt)
// atomically to both the obligation's pending balance/history and the
// affected account's balance/transaction log.
type SettleObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	accountRepo    adapter.AccountRepository
	poster         adapter.SettlementPoster
}

// NewSettleObligationUseCase creates a new SettleObligationUseCase instance.
func NewSettleObligationUseCase(
	obligationRepo adapter.ObligationRepository,
	accountRepo adapter.AccountRepository,
	poster adapter.SettlementPoster,
) *SettleObligationUseCase {
	return &SettleObligationUseCase{
		obligationRepo: obligationRepo,
		accountRepo:    accountRepo,
		poster:         poster,
	}
}

// Execute validates and posts the settlement. All validation happens before
// any mutation: on error the store is left exactly as it was.
func (uc *SettleObligationUseCase) Execute(ctx context.Context, input SettleInput) (*SettleOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodeInvalidSettlementAmount,
			"settlement amount must be greater than zero",
			domainerror.ErrInvalidSettlementAmount,
		)
	}
	if input.AccountID == uuid.Nil {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodeMissingSettlementAccount,
			"missing account reference",
			domainerror.ErrMissingSettlementAccount,
		)
	}

	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	monthID := input.MonthID
	if monthID == "" {
		monthID = valueobject.MonthID(input.Date)
	}
	periodKey := resolvePeriodKey(obligation, input.PeriodKey)

	// Calendar periods settle at most once; extra principal payments settle
	// no calendar period and may repeat within a month.
	if periodKey != valueobject.PeriodKeyExtraPayment && obligation.IsSettled(monthID, periodKey) {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodePeriodAlreadySettled,
			fmt.Sprintf("period %s of %s already settled", periodKey, monthID),
			domainerror.ErrPeriodAlreadySettled,
		)
	}

	if obligation.IsInstallment() && input.Amount.GreaterThan(obligation.PendingBalance.Add(overpaymentTolerance)) {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodeOverpayment,
			fmt.Sprintf("amount exceeds pending balance of %s", obligation.PendingBalance.String()),
			domainerror.ErrOverpayment,
		)
	}

	// Funds check precedes any mutation.
	if obligation.IsOutflow() && account.Balance.LessThan(input.Amount) {
		return nil, domainerror.NewSettlementError(
			domainerror.ErrCodeInsufficientFunds,
			"insufficient funds in account",
			domainerror.ErrInsufficientFunds,
		)
	}

	transaction := buildTransaction(obligation, account, input, monthID)
	if obligation.IsOutflow() {
		account.Balance = account.Balance.Sub(input.Amount)
	} else {
		account.Balance = account.Balance.Add(input.Amount)
	}
	account.UpdatedAt = time.Now().UTC()

	settlement := entity.Settlement{
		ID:           uuid.New(),
		ObligationID: obligation.ID,
		MonthID:      monthID,
		PeriodKey:    periodKey,
		Date:         valueobject.Midnight(input.Date),
		Amount:       input.Amount,
		AccountID:    account.ID,
	}
	obligation.RecordSettlement(settlement)
	obligation.UpdatedAt = time.Now().UTC()

	if err := uc.poster.PostSettlement(ctx, account, transaction, obligation, &settlement); err != nil {
		return nil, fmt.Errorf("failed to post settlement: %w", err)
	}

	return &SettleOutput{
		Obligation: obligation,
		Account:    account,
		Settlement: &settlement,
	}, nil
}

// resolvePeriodKey applies the default period slot for requests that omit it.
func resolvePeriodKey(o *entity.Obligation, key string) string {
	if key != "" {
		return key
	}
	if o.PaymentMode == entity.PaymentModeLump {
		return valueobject.PeriodKeyLump
	}
	return valueobject.PeriodKeyMonthly
}

// buildTransaction creates the account log entry for a settlement, keeping
// the legacy description wording per obligation type.
func buildTransaction(o *entity.Obligation, account *entity.Account, input SettleInput, monthID string) *entity.Transaction {
	kind := entity.TransactionKindIncome
	if o.IsOutflow() {
		kind = entity.TransactionKindExpense
	}

	var description string
	switch o.Type {
	case entity.ObligationTypeFixedExpense:
		description = fmt.Sprintf("Pago Fijo: %s (%s)", o.Name, monthID)
	case entity.ObligationTypeFixedIncome:
		description = fmt.Sprintf("Ingreso Fijo: %s (%s)", o.Name, monthID)
	case entity.ObligationTypePayable:
		description = fmt.Sprintf("Pago deuda: %s", o.Name)
	default:
		description = fmt.Sprintf("Cobro recibido: %s", o.Name)
	}

	return &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Date:        valueobject.Midnight(input.Date),
		Kind:        kind,
		Description: description,
		Amount:      input.Amount,
		CreatedAt:   time.Now().UTC(),
	}
}
