package service

import (
	"foodmarket/config"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/notify"
	"foodmarket/storage"
)

type IServiceManager interface {
	User() UserService
	Restaurant() RestaurantService
	Order() OrderService
	Delivery() DeliveryService
	Tracking() TrackingService
}

type service struct {
	userService       UserService
	restaurantService RestaurantService
	orderService      OrderService
	deliveryService   DeliveryService
	trackingService   TrackingService
}

func New(cfg config.Config, stg storage.IStorage, notifier notify.CourierNotifier, log logger.ILogger) IServiceManager {
	return &service{
		userService:       NewUserService(stg, log),
		restaurantService: NewRestaurantService(stg, log),
		orderService:      NewOrderService(cfg, stg, notifier, log),
		deliveryService:   NewDeliveryService(stg, log),
		trackingService:   NewTrackingService(stg, log),
	}
}

func (s *service) User() UserService {
	return s.userService
}

func (s *service) Restaurant() RestaurantService {
	return s.restaurantService
}

func (s *service) Order() OrderService {
	return s.orderService
}

func (s *service) Delivery() DeliveryService {
	return s.deliveryService
}

func (s *service) Tracking() TrackingService {
	return s.trackingService
}
