package models

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDelivery   Role = "delivery"
)

// Profile is the account record kept alongside the external identity
// provider; the provider authenticates, the profile carries the role.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	UserType  Role      `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
