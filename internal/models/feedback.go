package models

import "time"

// Review references a completed booking. It never mutates the booking.
type Review struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Complaint can be filed against a booking in any state.
type Complaint struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is addressed to a single user. The store keeps the
// collection newest-first.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite marks a (customer, provider) pair; presence means favorited.
type Favorite struct {
	CustomerID string `json:"customer_id"`
	ProviderID string `json:"provider_id"`
}
