package service

import (
	"context"
	"fmt"
	"time"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

// estimatedDeliveryWindow is promised to the customer when a courier
// claims an order.
const estimatedDeliveryWindow = 30 * time.Minute

type DeliveryService interface {
	Claim(ctx context.Context, courier *models.Profile, orderID string) (*models.Order, error)
	ListAvailable(ctx context.Context, courier *models.Profile) ([]*models.Order, error)
	ListAssigned(ctx context.Context, courier *models.Profile) ([]*models.Order, error)
}

type deliveryService struct {
	orders   storage.IOrderStorage
	tracking storage.ITrackingStorage
	log      logger.ILogger
}

func NewDeliveryService(stg storage.IStorage, log logger.ILogger) DeliveryService {
	return &deliveryService{
		orders:   stg.Order(),
		tracking: stg.Tracking(),
		log:      log,
	}
}

// Claim gives the courier exclusive ownership of one ready, unclaimed
// order. The precondition lives in the storage layer as a single
// conditional update; a zero-row match comes back as a Conflict without
// revealing whether the order was taken, not ready, or missing.
func (s *deliveryService) Claim(ctx context.Context, courier *models.Profile, orderID string) (*models.Order, error) {
	if courier.UserType != models.RoleDelivery {
		return nil, apperr.ErrUnauthorized
	}

	eta := time.Now().Add(estimatedDeliveryWindow)
	if err := s.orders.Claim(ctx, orderID, courier.ID, eta); err != nil {
		return nil, err
	}

	courierID := courier.ID
	event := &models.TrackingEvent{
		OrderID:   orderID,
		Status:    models.StatusPickedUp,
		Message:   fmt.Sprintf("picked up by courier %s", courier.FullName),
		UpdatedBy: &courierID,
	}
	if err := s.tracking.Append(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("order claimed",
		logger.String("order_id", orderID),
		logger.String("courier_id", courier.ID),
	)
	return s.orders.GetByID(ctx, orderID)
}

// ListAvailable returns ready, unclaimed orders oldest first so waiting
// orders are served fairly.
func (s *deliveryService) ListAvailable(ctx context.Context, courier *models.Profile) ([]*models.Order, error) {
	if courier.UserType != models.RoleDelivery {
		return nil, apperr.ErrUnauthorized
	}
	return s.orders.ListAvailable(ctx)
}

func (s *deliveryService) ListAssigned(ctx context.Context, courier *models.Profile) ([]*models.Order, error) {
	if courier.UserType != models.RoleDelivery {
		return nil, apperr.ErrUnauthorized
	}
	return s.orders.ListAssigned(ctx, courier.ID)
}
