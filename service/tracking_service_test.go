package service

import (
	"context"
	"errors"
	"testing"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/models"
)

func TestHistoryReturnsChronologicalTrail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := env.readyOrder(t)

	events, err := env.svc.Tracking().History(ctx, env.customer, order.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing, models.StatusReady,
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, e := range events {
		if e.Status != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Status, want[i])
		}
	}

	current, err := env.fake.Order().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if events[len(events)-1].Status != current.Status {
		t.Errorf("last event %s does not match order status %s", events[len(events)-1].Status, current.Status)
	}
}

func TestHistoryScopedToOwningCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := env.checkout(t)

	stranger := &models.Profile{ID: "stranger", UserType: models.RoleCustomer}
	if _, err := env.svc.Tracking().History(ctx, stranger, order.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for another customer, got %v", err)
	}

	if _, err := env.svc.Tracking().History(ctx, env.courier, order.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-customer role, got %v", err)
	}

	if _, err := env.svc.Tracking().History(ctx, env.customer, "missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing order, got %v", err)
	}
}
