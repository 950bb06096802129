// Package alert contains the due-date alert scheduler and its use cases.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/domain/entity"
)

// ComputeAlertsInput represents the input for alert computation.
type ComputeAlertsInput struct {
	// Today is the reference date for the scan window. Injected explicitly so
	// callers (and tests) control the clock.
	Today time.Time
	// Type optionally restricts the scan to one obligation type.
	Type *entity.ObligationType
}

// ComputeAlertsOutput represents the output of alert computation.
type ComputeAlertsOutput struct {
	Alerts []entity.Alert
}

// ComputeAlertsUseCase loads the obligation set and runs the scheduler.
type ComputeAlertsUseCase struct {
	obligationRepo adapter.ObligationRepository
	config         SchedulerConfig
}

// NewComputeAlertsUseCase creates a new ComputeAlertsUseCase instance.
func NewComputeAlertsUseCase(obligationRepo adapter.ObligationRepository, config SchedulerConfig) *ComputeAlertsUseCase {
	return &ComputeAlertsUseCase{
		obligationRepo: obligationRepo,
		config:         config,
	}
}

// Execute performs the alert computation.
func (uc *ComputeAlertsUseCase) Execute(ctx context.Context, input ComputeAlertsInput) (*ComputeAlertsOutput, error) {
	obligations, err := uc.obligationRepo.FindAll(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	return &ComputeAlertsOutput{
		Alerts: ComputeAlertsWithConfig(uc.config, input.Today, obligations),
	}, nil
}
