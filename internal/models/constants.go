package models

// Booking lifecycle states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Payment states, always derived from amounts, never set directly.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Provider approval states.
const (
	ProviderPending  = "pending"
	ProviderApproved = "approved"
	ProviderBlocked  = "blocked"
)

// Complaint states.
const (
	ComplaintOpen     = "open"
	ComplaintResolved = "resolved"
)

// Collection names under which the store persists each entity slice.
const (
	CollectionProviders     = "providers"
	CollectionBookings      = "bookings"
	CollectionMenuItems     = "menuItems"
	CollectionPackages      = "packages"
	CollectionReviews       = "reviews"
	CollectionNotifications = "notifications"
	CollectionComplaints    = "complaints"
	CollectionFavorites     = "favorites"
)

// Notification type tags.
const (
	NotificationBooking   = "booking"
	NotificationStatus    = "status"
	NotificationComplaint = "complaint"
)

// UnknownName is what id lookups resolve to when the referenced
// entity is no longer present. Deletes never cascade, so dangling
// references are legal and must render, not crash.
const UnknownName = "Unknown"
