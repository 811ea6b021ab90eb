package service

import (
	"context"

	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type RestaurantService interface {
	List(ctx context.Context) ([]*models.Restaurant, error)
	Get(ctx context.Context, id string) (*models.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]*models.MenuItem, error)
	MenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

type restaurantService struct {
	stg storage.IRestaurantStorage
	log logger.ILogger
}

func NewRestaurantService(stg storage.IStorage, log logger.ILogger) RestaurantService {
	return &restaurantService{
		stg: stg.Restaurant(),
		log: log,
	}
}

func (s *restaurantService) List(ctx context.Context) ([]*models.Restaurant, error) {
	return s.stg.GetAll(ctx)
}

func (s *restaurantService) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.stg.GetByID(ctx, id)
}

func (s *restaurantService) Menu(ctx context.Context, restaurantID string) ([]*models.MenuItem, error) {
	return s.stg.GetMenu(ctx, restaurantID)
}

func (s *restaurantService) MenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.stg.GetMenuItem(ctx, id)
}
