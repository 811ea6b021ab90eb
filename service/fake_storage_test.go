package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

// fakeStorage is an in-memory storage.IStorage. Claim and UpdateStatus
// check-and-set under one mutex, mirroring the conditional UPDATE the
// postgres repo issues.
type fakeStorage struct {
	mu          sync.Mutex
	profiles    map[string]*models.Profile
	restaurants map[string]*models.Restaurant
	menuItems   map[string]*models.MenuItem
	orders      map[string]*models.Order
	events      map[string][]*models.TrackingEvent
	orderNumber int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		profiles:    map[string]*models.Profile{},
		restaurants: map[string]*models.Restaurant{},
		menuItems:   map[string]*models.MenuItem{},
		orders:      map[string]*models.Order{},
		events:      map[string][]*models.TrackingEvent{},
		orderNumber: 1000,
	}
}

func (f *fakeStorage) User() storage.IUserStorage             { return &fakeUsers{f} }
func (f *fakeStorage) Restaurant() storage.IRestaurantStorage { return &fakeRestaurants{f} }
func (f *fakeStorage) Order() storage.IOrderStorage           { return &fakeOrders{f} }
func (f *fakeStorage) Tracking() storage.ITrackingStorage     { return &fakeTracking{f} }
func (f *fakeStorage) Close()                                 {}
func (f *fakeStorage) GetPool() *pgxpool.Pool                 { return nil }

type fakeUsers struct{ f *fakeStorage }

func (u *fakeUsers) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	p, ok := u.f.profiles[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeRestaurants struct{ f *fakeStorage }

func (r *fakeRestaurants) GetAll(_ context.Context) ([]*models.Restaurant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []*models.Restaurant
	for _, rest := range r.f.restaurants {
		cp := *rest
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRestaurants) GetByID(_ context.Context, id string) (*models.Restaurant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	rest, ok := r.f.restaurants[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *rest
	return &cp, nil
}

func (r *fakeRestaurants) GetByOwner(_ context.Context, ownerID string) (*models.Restaurant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, rest := range r.f.restaurants {
		if rest.OwnerID == ownerID {
			cp := *rest
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeRestaurants) GetMenu(_ context.Context, restaurantID string) ([]*models.MenuItem, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []*models.MenuItem
	for _, m := range r.f.menuItems {
		if m.RestaurantID == restaurantID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRestaurants) GetMenuItem(_ context.Context, id string) (*models.MenuItem, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	m, ok := r.f.menuItems[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

type fakeOrders struct{ f *fakeStorage }

func (o *fakeOrders) Create(_ context.Context, order *models.Order, items []*models.OrderItem, initialMessage string) (*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()

	o.f.orderNumber++
	order.ID = uuid.NewString()
	order.OrderNumber = o.f.orderNumber
	order.Status = models.StatusPending
	order.CreatedAt = time.Now()
	order.Items = nil
	for _, item := range items {
		item.ID = uuid.NewString()
		item.OrderID = order.ID
		order.Items = append(order.Items, *item)
	}

	cp := *order
	o.f.orders[order.ID] = &cp
	o.f.events[order.ID] = append(o.f.events[order.ID], &models.TrackingEvent{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Status:    models.StatusPending,
		Message:   initialMessage,
		CreatedAt: time.Now(),
	})
	return order, nil
}

func (o *fakeOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	order, ok := o.f.orders[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (o *fakeOrders) GetCustomerOrders(_ context.Context, customerID string) ([]*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	return o.filter(func(ord *models.Order) bool { return ord.CustomerID == customerID }, false), nil
}

func (o *fakeOrders) GetRestaurantOrders(_ context.Context, restaurantID string) ([]*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	return o.filter(func(ord *models.Order) bool { return ord.RestaurantID == restaurantID }, false), nil
}

func (o *fakeOrders) UpdateStatus(_ context.Context, id string, from, to models.OrderStatus) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	order, ok := o.f.orders[id]
	if !ok || order.Status != from {
		return apperr.ErrConflict
	}
	order.Status = to
	return nil
}

func (o *fakeOrders) Claim(_ context.Context, orderID, courierID string, estimatedDelivery time.Time) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	order, ok := o.f.orders[orderID]
	if !ok || order.Status != models.StatusReady || order.CourierID != nil {
		return apperr.ErrConflict
	}
	id := courierID
	order.CourierID = &id
	order.Status = models.StatusPickedUp
	eta := estimatedDelivery
	order.EstimatedDeliveryTime = &eta
	return nil
}

func (o *fakeOrders) ListAvailable(_ context.Context) ([]*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	return o.filter(func(ord *models.Order) bool {
		return ord.Status == models.StatusReady && ord.CourierID == nil
	}, true), nil
}

func (o *fakeOrders) ListAssigned(_ context.Context, courierID string) ([]*models.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	return o.filter(func(ord *models.Order) bool {
		if ord.CourierID == nil || *ord.CourierID != courierID {
			return false
		}
		return ord.Status == models.StatusPickedUp || ord.Status == models.StatusOutForDelivery
	}, true), nil
}

func (o *fakeOrders) filter(keep func(*models.Order) bool, oldestFirst bool) []*models.Order {
	var out []*models.Order
	for _, order := range o.f.orders {
		if keep(order) {
			cp := *order
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if oldestFirst {
			return out[i].OrderNumber < out[j].OrderNumber
		}
		return out[i].OrderNumber > out[j].OrderNumber
	})
	return out
}

type fakeTracking struct{ f *fakeStorage }

func (t *fakeTracking) Append(_ context.Context, event *models.TrackingEvent) error {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now()
	cp := *event
	t.f.events[event.OrderID] = append(t.f.events[event.OrderID], &cp)
	return nil
}

func (t *fakeTracking) History(_ context.Context, orderID string) ([]*models.TrackingEvent, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	events := t.f.events[orderID]
	out := make([]*models.TrackingEvent, 0, len(events))
	for _, e := range events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
