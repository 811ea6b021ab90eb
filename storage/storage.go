package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"foodmarket/pkg/models"
)

type IStorage interface {
	User() IUserStorage
	Restaurant() IRestaurantStorage
	Order() IOrderStorage
	Tracking() ITrackingStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IUserStorage interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

type IRestaurantStorage interface {
	GetAll(ctx context.Context) ([]*models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]*models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

type IOrderStorage interface {
	// Create inserts the order, its items, and the initial pending tracking
	// event in one transaction.
	Create(ctx context.Context, order *models.Order, items []*models.OrderItem, initialMessage string) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetCustomerOrders(ctx context.Context, customerID string) ([]*models.Order, error)
	GetRestaurantOrders(ctx context.Context, restaurantID string) ([]*models.Order, error)
	// UpdateStatus is conditional on the expected current status and returns
	// apperr.ErrConflict when no row matched.
	UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error
	// Claim atomically assigns a ready, unclaimed order to the courier.
	Claim(ctx context.Context, orderID, courierID string, estimatedDelivery time.Time) error
	ListAvailable(ctx context.Context) ([]*models.Order, error)
	ListAssigned(ctx context.Context, courierID string) ([]*models.Order, error)
}

type ITrackingStorage interface {
	Append(ctx context.Context, event *models.TrackingEvent) error
	History(ctx context.Context, orderID string) ([]*models.TrackingEvent, error)
}
