package models

// Provider is a catering business registered on the platform.
// Status is mutated by the admin, profile fields by the provider.
type Provider struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Mobile         string   `json:"mobile"`
	Area           string   `json:"area"`
	Capacity       int      `json:"capacity"`
	Specialty      string   `json:"specialty"`
	Description    string   `json:"description"`
	PricePerPlate  int64    `json:"price_per_plate"`
	BulkDiscount   float64  `json:"bulk_discount"`
	Dietary        []string `json:"dietary,omitempty"`
	Status         string   `json:"status"`
	Rating         float64  `json:"rating"`
	TotalBookings  int      `json:"total_bookings"`
	CommissionRate float64  `json:"commission_rate"`
}

// MenuItem belongs to exactly one provider.
type MenuItem struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      int64  `json:"price"`
	Type       string `json:"type"`
}

// Package is a provider-curated menu with a fixed per-plate price.
// ItemIDs reference MenuItems of the same provider, in menu order.
type Package struct {
	ID            string   `json:"id"`
	ProviderID    string   `json:"provider_id"`
	Name          string   `json:"name"`
	ItemIDs       []string `json:"item_ids"`
	PricePerPlate int64    `json:"price_per_plate"`
	Description   string   `json:"description"`
}
