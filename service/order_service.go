package service

import (
	"context"
	"fmt"

	"foodmarket/config"
	"foodmarket/pkg/apperr"
	"foodmarket/pkg/cart"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/pkg/notify"
	"foodmarket/storage"
)

type CheckoutInput struct {
	DeliveryAddress string `json:"delivery_address"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"payment_method"`
}

type OrderService interface {
	Checkout(ctx context.Context, customer *models.Profile, cartState cart.State, in CheckoutInput) (*models.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*models.Order, error)
	ListForRestaurant(ctx context.Context, owner *models.Profile) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, actor *models.Profile, orderID string, to models.OrderStatus, message string) error
}

type orderService struct {
	cfg      config.Config
	orders   storage.IOrderStorage
	tracking storage.ITrackingStorage
	rests    storage.IRestaurantStorage
	notifier notify.CourierNotifier
	log      logger.ILogger
}

func NewOrderService(cfg config.Config, stg storage.IStorage, notifier notify.CourierNotifier, log logger.ILogger) OrderService {
	return &orderService{
		cfg:      cfg,
		orders:   stg.Order(),
		tracking: stg.Tracking(),
		rests:    stg.Restaurant(),
		notifier: notifier,
		log:      log,
	}
}

// Checkout turns the session cart into an order. The order row, its item
// rows, and the initial pending tracking event commit together.
func (s *orderService) Checkout(ctx context.Context, customer *models.Profile, cartState cart.State, in CheckoutInput) (*models.Order, error) {
	if len(cartState.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperr.ErrInvalid)
	}
	if in.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: delivery address is required", apperr.ErrInvalid)
	}
	if in.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customer phone is required", apperr.ErrInvalid)
	}

	subtotal := 0.0
	items := make([]*models.OrderItem, 0, len(cartState.Items))
	for _, line := range cartState.Items {
		if line.RestaurantID != cartState.RestaurantID {
			return nil, fmt.Errorf("%w: cart items span multiple restaurants", apperr.ErrInvalid)
		}
		lineTotal := line.Price * float64(line.Quantity)
		subtotal += lineTotal
		items = append(items, &models.OrderItem{
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			UnitPrice:           line.Price,
			TotalPrice:          lineTotal,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	order := &models.Order{
		CustomerID:      customer.ID,
		RestaurantID:    cartState.RestaurantID,
		RestaurantName:  cartState.RestaurantName,
		TotalAmount:     subtotal + s.cfg.DeliveryFee,
		DeliveryFee:     s.cfg.DeliveryFee,
		DeliveryAddress: in.DeliveryAddress,
		CustomerPhone:   in.CustomerPhone,
		Notes:           in.Notes,
	}

	created, err := s.orders.Create(ctx, order, items, models.DefaultMessage(models.StatusPending))
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		logger.Int64("order_number", created.OrderNumber),
		logger.String("customer_id", customer.ID),
		logger.Float64("total", created.TotalAmount),
	)
	return created, nil
}

func (s *orderService) ListForCustomer(ctx context.Context, customerID string) ([]*models.Order, error) {
	return s.orders.GetCustomerOrders(ctx, customerID)
}

func (s *orderService) ListForRestaurant(ctx context.Context, owner *models.Profile) ([]*models.Order, error) {
	rest, err := s.rests.GetByOwner(ctx, owner.ID)
	if err != nil {
		if err == apperr.ErrNotFound {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}
	return s.orders.GetRestaurantOrders(ctx, rest.ID)
}

// UpdateStatus applies one state-machine transition and appends its
// tracking event. Claims do not go through here; a courier acquires an
// order only via DeliveryService.Claim.
func (s *orderService) UpdateStatus(ctx context.Context, actor *models.Profile, orderID string, to models.OrderStatus, message string) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrInvalid, to)
	}
	if to == models.StatusPickedUp {
		return fmt.Errorf("%w: orders are picked up via claim", apperr.ErrInvalid)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, actor, order); err != nil {
		return err
	}
	if !models.CanAdvance(order.Status, to) {
		return fmt.Errorf("%w: cannot move %s order to %s", apperr.ErrConflict, order.Status, to)
	}
	if !models.CanTransition(order.Status, to, actor.UserType) {
		return fmt.Errorf("%w: %s may not set status %s", apperr.ErrUnauthorized, actor.UserType, to)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, order.Status, to); err != nil {
		return err
	}

	if message == "" {
		message = models.DefaultMessage(to)
	}
	actorID := actor.ID
	event := &models.TrackingEvent{
		OrderID:   orderID,
		Status:    to,
		Message:   message,
		UpdatedBy: &actorID,
	}
	if err := s.tracking.Append(ctx, event); err != nil {
		return err
	}

	if to == models.StatusReady {
		order.Status = to
		s.notifier.OrderReady(order)
	}

	s.log.Info("order status updated",
		logger.String("order_id", orderID),
		logger.String("status", string(to)),
		logger.String("actor", string(actor.UserType)),
	)
	return nil
}

// checkOwnership rejects actors operating on orders that are not theirs.
func (s *orderService) checkOwnership(ctx context.Context, actor *models.Profile, order *models.Order) error {
	switch actor.UserType {
	case models.RoleCustomer:
		if order.CustomerID != actor.ID {
			return apperr.ErrNotFound
		}
	case models.RoleRestaurant:
		rest, err := s.rests.GetByOwner(ctx, actor.ID)
		if err != nil {
			if err == apperr.ErrNotFound {
				return apperr.ErrUnauthorized
			}
			return err
		}
		if rest.ID != order.RestaurantID {
			return apperr.ErrUnauthorized
		}
	case models.RoleDelivery:
		if order.CourierID == nil || *order.CourierID != actor.ID {
			return apperr.ErrUnauthorized
		}
	default:
		return apperr.ErrUnauthorized
	}
	return nil
}
