// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"fmt"
	"sort"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// ListObligationsInput represents the input for listing obligations.
type ListObligationsInput struct {
	// Type optionally restricts the listing to one obligation type.
	Type *entity.ObligationType
}

// ListObligationsOutput represents the output of listing obligations.
type ListObligationsOutput struct {
	Obligations []*entity.Obligation
}

// ListObligationsUseCase handles obligation listing logic.
type ListObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.ObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation listing, sorted by counterparty name as the
// legacy list views were.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}

	sort.SliceStable(obligations, func(i, j int) bool {
		return obligations[i].Name < obligations[j].Name
	})

	return &ListObligationsOutput{
		Obligations: obligations,
	}, nil
}
