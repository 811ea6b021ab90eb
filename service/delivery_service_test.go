package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/models"
)

func (e *testEnv) readyOrder(t *testing.T) *models.Order {
	t.Helper()
	ctx := context.Background()
	order := e.checkout(t)
	for _, status := range []models.OrderStatus{models.StatusConfirmed, models.StatusPreparing, models.StatusReady} {
		if err := e.svc.Order().UpdateStatus(ctx, e.owner, order.ID, status, ""); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
	}
	return order
}

func TestClaimConcurrentExactlyOneWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	order := env.readyOrder(t)

	var wg sync.WaitGroup
	errA := make(chan error, 1)
	errB := make(chan error, 1)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := env.svc.Delivery().Claim(ctx, env.courier, order.ID)
		errA <- err
	}()
	go func() {
		defer wg.Done()
		_, err := env.svc.Delivery().Claim(ctx, env.courierB, order.ID)
		errB <- err
	}()
	wg.Wait()

	a, b := <-errA, <-errB
	successes := 0
	for _, err := range []error{a, b} {
		if err == nil {
			successes++
		} else if !errors.Is(err, apperr.ErrConflict) {
			t.Errorf("loser got %v, want ErrConflict", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful claim, got %d", successes)
	}

	claimed, err := env.fake.Order().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if claimed.CourierID == nil {
		t.Fatal("no courier assigned")
	}
	winner := *claimed.CourierID
	if winner != env.courier.ID && winner != env.courierB.ID {
		t.Errorf("unexpected courier %q", winner)
	}

	events, err := env.fake.Tracking().History(ctx, order.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	pickedUp := 0
	for _, e := range events {
		if e.Status == models.StatusPickedUp {
			pickedUp++
		}
	}
	if pickedUp != 1 {
		t.Errorf("expected exactly one picked_up event, got %d", pickedUp)
	}
}

func TestClaimSetsEstimatedDelivery(t *testing.T) {
	env := newTestEnv(t)
	order := env.readyOrder(t)

	before := time.Now()
	claimed, err := env.svc.Delivery().Claim(context.Background(), env.courier, order.ID)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if claimed.EstimatedDeliveryTime == nil {
		t.Fatal("estimated delivery time not set")
	}
	eta := *claimed.EstimatedDeliveryTime
	if eta.Before(before.Add(29*time.Minute)) || eta.After(time.Now().Add(31*time.Minute)) {
		t.Errorf("eta = %v, want about 30 minutes from now", eta)
	}
}

func TestClaimNotReadyFails(t *testing.T) {
	env := newTestEnv(t)
	order := env.checkout(t)

	_, err := env.svc.Delivery().Claim(context.Background(), env.courier, order.ID)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected ErrConflict for pending order, got %v", err)
	}
}

func TestClaimMissingOrderIsOpaque(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Delivery().Claim(context.Background(), env.courier, "no-such-order")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected ErrConflict for missing order, got %v", err)
	}
}

func TestClaimRequiresDeliveryRole(t *testing.T) {
	env := newTestEnv(t)
	order := env.readyOrder(t)

	_, err := env.svc.Delivery().Claim(context.Background(), env.customer, order.ID)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListAvailableAndAssigned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := env.readyOrder(t)
	second := env.readyOrder(t)

	available, err := env.svc.Delivery().ListAvailable(ctx, env.courier)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available orders, got %d", len(available))
	}
	if available[0].ID != first.ID {
		t.Error("expected oldest ready order first")
	}

	if _, err := env.svc.Delivery().Claim(ctx, env.courier, first.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	available, err = env.svc.Delivery().ListAvailable(ctx, env.courier)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(available) != 1 || available[0].ID != second.ID {
		t.Errorf("expected only the unclaimed order, got %+v", available)
	}

	assigned, err := env.svc.Delivery().ListAssigned(ctx, env.courier)
	if err != nil {
		t.Fatalf("ListAssigned: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != first.ID {
		t.Errorf("expected the claimed order assigned, got %+v", assigned)
	}

	assignedB, err := env.svc.Delivery().ListAssigned(ctx, env.courierB)
	if err != nil {
		t.Fatalf("ListAssigned: %v", err)
	}
	if len(assignedB) != 0 {
		t.Errorf("expected no orders for the other courier, got %+v", assignedB)
	}
}
