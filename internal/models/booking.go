package models

import "time"

// Booking is the central record of the marketplace. Amounts are fixed
// at creation time and never recomputed when catalog prices change
// later; only AdvancePaid moves, and the payment fields follow it.
type Booking struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	ProviderID      string    `json:"provider_id"`
	EventType       string    `json:"event_type"`
	EventDate       time.Time `json:"event_date"`
	EndDate         time.Time `json:"end_date"`
	GuestCount      int       `json:"guest_count"`
	Location        string    `json:"location"`
	PackageID       string    `json:"package_id,omitempty"`
	CustomItemIDs   []string  `json:"custom_item_ids,omitempty"`
	TotalAmount     int64     `json:"total_amount"`
	AdvancePaid     int64     `json:"advance_paid"`
	RemainingAmount int64     `json:"remaining_amount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	ExtraCharges    int64     `json:"extra_charges"`
}

// SyncPayment re-derives RemainingAmount and PaymentStatus from the
// current TotalAmount/AdvancePaid pair. Must be called after every
// change to AdvancePaid; PaymentStatus is never set any other way.
func (b *Booking) SyncPayment() {
	b.RemainingAmount = b.TotalAmount - b.AdvancePaid

	switch {
	case b.AdvancePaid >= b.TotalAmount:
		b.PaymentStatus = PaymentPaid
	case b.AdvancePaid > 0:
		b.PaymentStatus = PaymentPartial
	default:
		b.PaymentStatus = PaymentPending
	}
}

// Terminal reports whether the booking can no longer change state.
func (b *Booking) Terminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
