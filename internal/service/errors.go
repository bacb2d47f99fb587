package service

import "errors"

var (
	ErrMissingFields     = errors.New("event date, guest count and location are required")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrBookingNotCompleted = errors.New("booking is not completed yet")
	ErrForeignMenuItem     = errors.New("menu item belongs to another provider")
)
