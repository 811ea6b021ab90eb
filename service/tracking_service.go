package service

import (
	"context"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type TrackingService interface {
	History(ctx context.Context, actor *models.Profile, orderID string) ([]*models.TrackingEvent, error)
}

type trackingService struct {
	orders   storage.IOrderStorage
	tracking storage.ITrackingStorage
	log      logger.ILogger
}

func NewTrackingService(stg storage.IStorage, log logger.ILogger) TrackingService {
	return &trackingService{
		orders:   stg.Order(),
		tracking: stg.Tracking(),
		log:      log,
	}
}

// History returns the full audit trail of a customer's own order, oldest
// first. Orders belonging to someone else look absent rather than
// forbidden.
func (s *trackingService) History(ctx context.Context, actor *models.Profile, orderID string) ([]*models.TrackingEvent, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.UserType != models.RoleCustomer || order.CustomerID != actor.ID {
		return nil, apperr.ErrNotFound
	}

	events, err := s.tracking.History(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperr.ErrNotFound
	}
	return events, nil
}
