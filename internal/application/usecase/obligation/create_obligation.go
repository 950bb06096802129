// Package obligation contains obligation-related use cases.
package obligation

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

// CreateObligationInput represents the input for obligation creation.
type CreateObligationInput struct {
	Type        entity.ObligationType
	Name        string
	Description string
	// CreationDate is the floor below which no period is due. Defaults to today.
	CreationDate *time.Time

	// Recurring-fixed fields.
	NominalDay int
	ValueMode  entity.ValueMode
	Amount     *decimal.Decimal

	// Installment fields.
	TotalAmount       decimal.Decimal
	Periodicity       valueobject.Periodicity
	PaymentMode       entity.PaymentMode
	InstallmentAmount *decimal.Decimal
	LumpDueDate       *time.Time

	// SourceAccountID optionally funds a receivable from one of the user's
	// accounts, debiting it at creation time.
	SourceAccountID *uuid.UUID
}

// CreateObligationOutput represents the output of obligation creation.
type CreateObligationOutput struct {
	Obligation *entity.Obligation
}

// CreateObligationUseCase handles obligation creation logic.
type CreateObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	accountRepo    adapter.AccountRepository
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(
	obligationRepo adapter.ObligationRepository,
	accountRepo adapter.AccountRepository,
) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo: obligationRepo,
		accountRepo:    accountRepo,
	}
}

// Execute performs the obligation creation.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
	if !entity.IsValidObligationType(input.Type) {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationType,
			"type must be 'fixed_expense', 'fixed_income', 'payable' or 'receivable'",
			domainerror.ErrInvalidObligationType,
		)
	}
	if input.Name == "" {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationName,
			"counterparty/label name is required",
			domainerror.ErrInvalidObligationName,
		)
	}

	creationDate := valueobject.Midnight(time.Now())
	if input.CreationDate != nil {
		creationDate = valueobject.Midnight(*input.CreationDate)
	}

	var obligation *entity.Obligation
	var err error
	switch input.Type {
	case entity.ObligationTypeFixedExpense, entity.ObligationTypeFixedIncome:
		obligation, err = uc.buildFixed(input, creationDate)
	default:
		obligation, err = uc.buildInstallment(input, creationDate)
	}
	if err != nil {
		return nil, err
	}

	if input.SourceAccountID != nil && input.Type == entity.ObligationTypeReceivable {
		if err := uc.createWithDisbursement(ctx, obligation, *input.SourceAccountID); err != nil {
			return nil, err
		}
	} else if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}

	return &CreateObligationOutput{
		Obligation: obligation,
	}, nil
}

func (uc *CreateObligationUseCase) buildFixed(input CreateObligationInput, creationDate time.Time) (*entity.Obligation, error) {
	if input.NominalDay < 1 || input.NominalDay > 31 {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidNominalDay,
			"nominal day must be between 1 and 31",
			domainerror.ErrInvalidNominalDay,
		)
	}

	valueMode := input.ValueMode
	if valueMode == "" {
		valueMode = entity.ValueModeFixed
	}

	amount := input.Amount
	if valueMode == entity.ValueModeFixed {
		if amount == nil || !amount.IsPositive() {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeInvalidFixedAmount,
				"fixed-value obligations require a positive amount",
				domainerror.ErrInvalidFixedAmount,
			)
		}
	} else {
		// Variable-value obligations carry no amount; it is entered at
		// settlement time.
		amount = nil
	}

	return entity.NewFixedObligation(
		input.Type,
		input.Name,
		input.Description,
		input.NominalDay,
		valueMode,
		amount,
		creationDate,
	), nil
}

func (uc *CreateObligationUseCase) buildInstallment(input CreateObligationInput, creationDate time.Time) (*entity.Obligation, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidTotalAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidTotalAmount,
		)
	}

	if input.PaymentMode == entity.PaymentModeLump {
		if input.LumpDueDate == nil {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeMissingLumpDate,
				"lump obligations require an explicit due date",
				domainerror.ErrMissingLumpDate,
			)
		}
		lumpDate := valueobject.Midnight(*input.LumpDueDate)
		return entity.NewInstallmentObligation(
			input.Type,
			input.Name,
			input.Description,
			input.TotalAmount,
			input.Periodicity,
			entity.PaymentModeLump,
			0,
			nil,
			&lumpDate,
			creationDate,
		), nil
	}

	if !valueobject.IsValidPeriodicity(input.Periodicity) {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidPeriodicity,
			"periodicity must be 'monthly', 'biweekly' or 'decadal'",
			domainerror.ErrInvalidPeriodicity,
		)
	}

	// Monthly installments take their due day from the obligation; biweekly
	// and decadal ones take it from the period policy.
	nominalDay := input.NominalDay
	if input.Periodicity == valueobject.PeriodicityMonthly {
		if nominalDay < 1 || nominalDay > 31 {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeInvalidNominalDay,
				"nominal day must be between 1 and 31",
				domainerror.ErrInvalidNominalDay,
			)
		}
	} else {
		nominalDay = 0
	}

	return entity.NewInstallmentObligation(
		input.Type,
		input.Name,
		input.Description,
		input.TotalAmount,
		input.Periodicity,
		entity.PaymentModeInstallments,
		nominalDay,
		input.InstallmentAmount,
		nil,
		creationDate,
	), nil
}

// createWithDisbursement debits the source account for the loaned amount and
// creates the receivable in one atomic unit.
func (uc *CreateObligationUseCase) createWithDisbursement(ctx context.Context, obligation *entity.Obligation, accountID uuid.UUID) error {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if account.Balance.LessThan(obligation.TotalAmount) {
		return domainerror.NewSettlementError(
			domainerror.ErrCodeInsufficientFunds,
			"insufficient funds in source account",
			domainerror.ErrInsufficientFunds,
		)
	}

	account.Balance = account.Balance.Sub(obligation.TotalAmount)
	account.UpdatedAt = time.Now().UTC()

	transaction := &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Date:        obligation.CreationDate,
		Kind:        entity.TransactionKindExpense,
		Description: fmt.Sprintf("Préstamo a %s", obligation.Name),
		Amount:      obligation.TotalAmount,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.obligationRepo.CreateWithDisbursement(ctx, obligation, account, transaction); err != nil {
		return fmt.Errorf("failed to create obligation with disbursement: %w", err)
	}
	return nil
}
