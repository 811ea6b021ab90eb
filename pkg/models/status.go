package models

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// nextStatuses is the allowed transition graph. Cancellation is possible
// from any state before a courier holds the order; delivered and cancelled
// are terminal.
var nextStatuses = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReady, StatusCancelled},
	StatusReady:          {StatusPickedUp, StatusCancelled},
	StatusPickedUp:       {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// transitionActor names the role allowed to drive each forward transition.
var transitionActor = map[OrderStatus]Role{
	StatusConfirmed:      RoleRestaurant,
	StatusPreparing:      RoleRestaurant,
	StatusReady:          RoleRestaurant,
	StatusPickedUp:       RoleDelivery,
	StatusOutForDelivery: RoleDelivery,
	StatusDelivered:      RoleDelivery,
}

var defaultMessages = map[OrderStatus]string{
	StatusPending:        "order received and under review",
	StatusConfirmed:      "confirmed by restaurant",
	StatusPreparing:      "being prepared",
	StatusReady:          "ready, awaiting courier",
	StatusPickedUp:       "picked up by courier",
	StatusOutForDelivery: "courier en route",
	StatusDelivered:      "delivered",
	StatusCancelled:      "cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := nextStatuses[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return len(nextStatuses[s]) == 0
}

// CanAdvance reports whether from -> to is a legal transition. Same-status
// transitions are rejected so racing identical requests cannot append
// duplicate tracking events.
func CanAdvance(from, to OrderStatus) bool {
	for _, s := range nextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransition reports whether actor may drive from -> to. Customers may
// only cancel their still-pending orders; restaurants may cancel any order
// a courier does not hold yet.
func CanTransition(from, to OrderStatus, actor Role) bool {
	if !CanAdvance(from, to) {
		return false
	}
	if to == StatusCancelled {
		switch actor {
		case RoleRestaurant:
			return true
		case RoleCustomer:
			return from == StatusPending
		default:
			return false
		}
	}
	return transitionActor[to] == actor
}

// DefaultMessage is the customer-facing tracking text for a status, used
// when the caller supplies none.
func DefaultMessage(s OrderStatus) string {
	if msg, ok := defaultMessages[s]; ok {
		return msg
	}
	return "order status updated"
}
