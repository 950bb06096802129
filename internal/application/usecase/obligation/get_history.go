// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// GetHistoryInput represents the input for retrieving settlement history.
type GetHistoryInput struct {
	ObligationID uuid.UUID
}

// GetHistoryOutput represents the output of retrieving settlement history.
type GetHistoryOutput struct {
	Obligation  *entity.Obligation
	Settlements []entity.Settlement
}

// GetHistoryUseCase retrieves an obligation's settlement history, newest first.
type GetHistoryUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(obligationRepo adapter.ObligationRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute retrieves the settlement history.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return nil, err
	}

	settlements := make([]entity.Settlement, len(obligation.History))
	copy(settlements, obligation.History)
	sort.SliceStable(settlements, func(i, j int) bool {
		return settlements[i].Date.After(settlements[j].Date)
	})

	return &GetHistoryOutput{
		Obligation:  obligation,
		Settlements: settlements,
	}, nil
}

// IsSettledInput represents the input for a period settlement query.
type IsSettledInput struct {
	ObligationID uuid.UUID
	MonthID      string
	PeriodKey    string
}

// IsSettledOutput represents the output of a period settlement query.
type IsSettledOutput struct {
	Settled bool
}

// IsSettledUseCase answers whether a specific (month, period) pair has been
// settled for an obligation.
type IsSettledUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewIsSettledUseCase creates a new IsSettledUseCase instance.
func NewIsSettledUseCase(obligationRepo adapter.ObligationRepository) *IsSettledUseCase {
	return &IsSettledUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the settlement query.
func (uc *IsSettledUseCase) Execute(ctx context.Context, input IsSettledInput) (*IsSettledOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return nil, err
	}

	return &IsSettledOutput{
		Settled: obligation.IsSettled(input.MonthID, input.PeriodKey),
	}, nil
}
