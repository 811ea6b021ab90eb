package models

import "time"

type Order struct {
	ID                    string      `json:"id"`
	OrderNumber           int64       `json:"order_number"`
	CustomerID            string      `json:"customer_id"`
	RestaurantID          string      `json:"restaurant_id"`
	CourierID             *string     `json:"courier_id"`
	TotalAmount           float64     `json:"total_amount"`
	DeliveryFee           float64     `json:"delivery_fee"`
	DeliveryAddress       string      `json:"delivery_address"`
	CustomerPhone         string      `json:"customer_phone"`
	Notes                 string      `json:"notes"`
	Status                OrderStatus `json:"status"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	CreatedAt             time.Time   `json:"created_at"`

	// Joined for display, not columns of the orders table.
	RestaurantName string      `json:"restaurant_name,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the menu price at checkout time; later menu price
// changes must not affect it.
type OrderItem struct {
	ID                  string  `json:"id"`
	OrderID             string  `json:"order_id"`
	MenuItemID          string  `json:"menu_item_id"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	TotalPrice          float64 `json:"total_price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// TrackingEvent is one append-only audit record of a status change.
type TrackingEvent struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	UpdatedBy *string     `json:"updated_by,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
