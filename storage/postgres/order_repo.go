package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodmarket/pkg/apperr"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type orderRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewOrderRepo(db *pgxpool.Pool, log logger.ILogger) storage.IOrderStorage {
	return &orderRepo{db: db, log: log}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order, items []*models.OrderItem, initialMessage string) (*models.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("failed to begin order transaction", logger.Error(err))
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (customer_id, restaurant_id, total_amount, delivery_fee, delivery_address, customer_phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_number, created_at
	`
	err = tx.QueryRow(ctx, query,
		order.CustomerID,
		order.RestaurantID,
		order.TotalAmount,
		order.DeliveryFee,
		order.DeliveryAddress,
		order.CustomerPhone,
		order.Notes,
		models.StatusPending,
	).Scan(&order.ID, &order.OrderNumber, &order.CreatedAt)
	if err != nil {
		r.log.Error("failed to create order", logger.Error(err))
		return nil, err
	}
	order.Status = models.StatusPending

	for _, item := range items {
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, total_price, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice, item.TotalPrice, item.SpecialInstructions).Scan(&item.ID)
		if err != nil {
			r.log.Error("failed to create order item", logger.Error(err))
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_tracking (order_id, status, message)
		VALUES ($1, $2, $3)
	`, order.ID, models.StatusPending, initialMessage)
	if err != nil {
		r.log.Error("failed to create initial tracking event", logger.Error(err))
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit order transaction", logger.Error(err))
		return nil, err
	}

	order.Items = make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, *item)
	}
	return order, nil
}

const orderColumns = `
	o.id, o.order_number, o.customer_id, o.restaurant_id, o.courier_id,
	o.total_amount, o.delivery_fee, o.delivery_address, o.customer_phone, o.notes,
	o.status, o.estimated_delivery_time, o.created_at,
	COALESCE(r.name, '') AS restaurant_name
`

func (r *orderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.RestaurantID, &order.CourierID,
		&order.TotalAmount, &order.DeliveryFee, &order.DeliveryAddress, &order.CustomerPhone, &order.Notes,
		&order.Status, &order.EstimatedDeliveryTime, &order.CreatedAt,
		&order.RestaurantName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperr.ErrNotFound
		}
		r.log.Error("failed to get order by id", logger.String("id", id), logger.Error(err))
		return nil, err
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepo) GetCustomerOrders(ctx context.Context, customerID string) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`
	orders, err := r.scanOrders(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		items, err := r.getItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return orders, nil
}

func (r *orderRepo) GetRestaurantOrders(ctx context.Context, restaurantID string) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.restaurant_id = $1
		ORDER BY o.created_at DESC
	`
	return r.scanOrders(ctx, query, restaurantID)
}

// UpdateStatus advances an order only when it still has the expected
// current status, so two racing transitions cannot both apply.
func (r *orderRepo) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) error {
	res, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		r.log.Error("failed to update order status", logger.String("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrConflict
	}
	return nil
}

// Claim is the single conditional update that makes two concurrent couriers
// safe: only the one whose UPDATE matches the ready, unclaimed row wins.
func (r *orderRepo) Claim(ctx context.Context, orderID, courierID string, estimatedDelivery time.Time) error {
	res, err := r.db.Exec(ctx, `
		UPDATE orders
		SET courier_id = $1, status = $2, estimated_delivery_time = $3
		WHERE id = $4 AND status = $5 AND courier_id IS NULL
	`, courierID, models.StatusPickedUp, estimatedDelivery, orderID, models.StatusReady)
	if err != nil {
		r.log.Error("failed to claim order", logger.String("order_id", orderID), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrConflict
	}
	return nil
}

func (r *orderRepo) ListAvailable(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.status = $1 AND o.courier_id IS NULL
		ORDER BY o.created_at ASC
	`
	return r.scanOrders(ctx, query, models.StatusReady)
}

func (r *orderRepo) ListAssigned(ctx context.Context, courierID string) ([]*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.courier_id = $1 AND o.status = ANY($2)
		ORDER BY o.created_at ASC
	`
	return r.scanOrders(ctx, query, courierID, []string{string(models.StatusPickedUp), string(models.StatusOutForDelivery)})
}

func (r *orderRepo) scanOrders(ctx context.Context, query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.RestaurantID, &o.CourierID,
			&o.TotalAmount, &o.DeliveryFee, &o.DeliveryAddress, &o.CustomerPhone, &o.Notes,
			&o.Status, &o.EstimatedDeliveryTime, &o.CreatedAt,
			&o.RestaurantName,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *orderRepo) getItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, menu_item_id, quantity, unit_price, total_price, COALESCE(special_instructions, '')
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.SpecialInstructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
