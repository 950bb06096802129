package persistence

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
	"github.com/finanzas-app/backend/internal/integration/persistence/model"
)

func TestObligationRepository_FindAllFiltersByType(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewObligationRepository(db)

	amount := decimal.NewFromInt(800)
	creation := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	fixed := entity.NewFixedObligation(entity.ObligationTypeFixedExpense, "Arriendo", "", 5, entity.ValueModeFixed, &amount, creation)
	payable := entity.NewInstallmentObligation(entity.ObligationTypePayable, "Juan", "", decimal.NewFromInt(1000), valueobject.PeriodicityMonthly, entity.PaymentModeInstallments, 15, &amount, nil, creation)
	for _, o := range []*entity.Obligation{fixed, payable} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("failed to create obligation: %v", err)
		}
	}

	all, err := repo.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered count = %d, want 2", len(all))
	}

	payableType := entity.ObligationTypePayable
	payables, err := repo.FindAll(ctx, &payableType)
	if err != nil {
		t.Fatalf("filtered FindAll failed: %v", err)
	}
	if len(payables) != 1 || payables[0].ID != payable.ID {
		t.Errorf("filtered result = %d obligations, want just the payable", len(payables))
	}
}

func TestObligationRepository_DeleteRemovesHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewObligationRepository(db)

	installment := decimal.NewFromInt(200)
	obligation := entity.NewInstallmentObligation(
		entity.ObligationTypePayable, "Juan", "",
		decimal.NewFromInt(1000), valueobject.PeriodicityMonthly,
		entity.PaymentModeInstallments, 15, &installment, nil,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
	)
	if err := repo.Create(ctx, obligation); err != nil {
		t.Fatalf("failed to create obligation: %v", err)
	}

	settlement := model.SettlementFromEntity(&entity.Settlement{
		ID:           uuid.New(),
		ObligationID: obligation.ID,
		MonthID:      "2026-02",
		PeriodKey:    "M1",
		Date:         time.Date(2026, 2, 15, 0, 0, 0, 0, time.Local),
		Amount:       decimal.NewFromInt(200),
		AccountID:    uuid.New(),
	})
	if err := db.Create(settlement).Error; err != nil {
		t.Fatalf("failed to seed settlement: %v", err)
	}

	if err := repo.Delete(ctx, obligation.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, obligation.ID); !errors.Is(err, domainerror.ErrObligationNotFound) {
		t.Errorf("expected ErrObligationNotFound after delete, got %v", err)
	}

	var remaining int64
	if err := db.Model(&model.SettlementModel{}).Where("obligation_id = ?", obligation.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("failed to count settlements: %v", err)
	}
	if remaining != 0 {
		t.Errorf("settlement rows remaining = %d, want 0", remaining)
	}
}

func TestObligationRepository_DeleteUnknownReportsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewObligationRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrObligationNotFound) {
		t.Errorf("expected ErrObligationNotFound, got %v", err)
	}
}
