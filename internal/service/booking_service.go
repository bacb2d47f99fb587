package service

import (
	"context"
	"time"

	"caterbook/internal/events"
	"caterbook/internal/metrics"
	"caterbook/internal/models"
	"caterbook/internal/pricing"
	"caterbook/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingService owns the booking lifecycle. All transitions are
// explicit single-shot operations; an attempt from a wrong source state
// is rejected without side effects.
type BookingService struct {
	store    *store.Store
	eventBus *events.EventBus
	logger   *zerolog.Logger
}

func NewBookingService(st *store.Store, eventBus *events.EventBus, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:    st,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateParams is a customer's booking request.
type CreateParams struct {
	CustomerID    string
	ProviderID    string
	EventType     string
	EventDate     time.Time
	EndDate       time.Time
	GuestCount    int
	Location      string
	Mode          string
	PackageID     string
	CustomItemIDs []string
	AdvanceAmount int64
	Decoration    bool
	LiveCounter   bool
}

// Create prices the request, stores a pending booking and announces it.
// Amounts are frozen here; later catalog or price changes never touch
// an existing booking.
func (s *BookingService) Create(ctx context.Context, p CreateParams) (models.Booking, error) {
	if p.EventDate.IsZero() || p.Location == "" {
		return models.Booking{}, ErrMissingFields
	}

	provider, ok := s.store.ProviderByID(p.ProviderID)
	if !ok {
		return models.Booking{}, ErrProviderNotFound
	}

	req := pricing.Request{
		Mode:        p.Mode,
		GuestCount:  p.GuestCount,
		StartDate:   p.EventDate,
		EndDate:     p.EndDate,
		Decoration:  p.Decoration,
		LiveCounter: p.LiveCounter,
	}

	if p.Mode == pricing.ModeCustom {
		// Dangling item references price as absent rather than failing.
		for _, id := range p.CustomItemIDs {
			if item, ok := s.store.MenuItemByID(id); ok {
				req.Items = append(req.Items, item)
			}
		}
	} else {
		if pkg, ok := s.store.PackageByID(p.PackageID); ok {
			req.Package = &pkg
		}
	}

	breakdown, err := pricing.Quote(provider, req)
	if err != nil {
		return models.Booking{}, err
	}

	endDate := p.EndDate
	if endDate.IsZero() {
		endDate = p.EventDate
	}

	booking := models.Booking{
		ID:           uuid.NewString(),
		CustomerID:   p.CustomerID,
		ProviderID:   p.ProviderID,
		EventType:    p.EventType,
		EventDate:    p.EventDate,
		EndDate:      endDate,
		GuestCount:   p.GuestCount,
		Location:     p.Location,
		TotalAmount:  breakdown.Total,
		AdvancePaid:  p.AdvanceAmount,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
		ExtraCharges: breakdown.ExtraCharges,
	}
	if p.Mode == pricing.ModeCustom {
		booking.CustomItemIDs = p.CustomItemIDs
	} else {
		booking.PackageID = p.PackageID
	}
	booking.SyncPayment()

	updated := append(append([]models.Booking(nil), s.store.Bookings()...), booking)
	if err := s.store.SaveBookings(ctx, updated); err != nil {
		return models.Booking{}, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("provider_id", booking.ProviderID).
		Int64("total", booking.TotalAmount).
		Msg("Booking created")

	s.publishEvent(events.EventBookingCreated, booking, p.CustomerID)

	return booking, nil
}

// Accept moves a pending booking to confirmed.
func (s *BookingService) Accept(ctx context.Context, bookingID, actor string) (models.Booking, error) {
	return s.transition(ctx, bookingID, actor, models.StatusConfirmed, events.EventBookingConfirmed, models.StatusPending)
}

// Reject cancels a pending booking.
func (s *BookingService) Reject(ctx context.Context, bookingID, actor string) (models.Booking, error) {
	return s.transition(ctx, bookingID, actor, models.StatusCancelled, events.EventBookingCancelled, models.StatusPending)
}

// Cancel cancels a booking that has not been completed yet.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actor string) (models.Booking, error) {
	return s.transition(ctx, bookingID, actor, models.StatusCancelled, events.EventBookingCancelled, models.StatusPending, models.StatusConfirmed)
}

// Complete marks a confirmed booking as rendered.
func (s *BookingService) Complete(ctx context.Context, bookingID, actor string) (models.Booking, error) {
	return s.transition(ctx, bookingID, actor, models.StatusCompleted, events.EventBookingCompleted, models.StatusConfirmed)
}

func (s *BookingService) transition(ctx context.Context, bookingID, actor, target, eventType string, from ...string) (models.Booking, error) {
	bookings := s.store.Bookings()
	idx := -1
	for i, b := range bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Booking{}, ErrBookingNotFound
	}

	allowed := false
	for _, f := range from {
		if bookings[idx].Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Booking{}, ErrInvalidTransition
	}

	updated := append([]models.Booking(nil), bookings...)
	updated[idx].Status = target
	if err := s.store.SaveBookings(ctx, updated); err != nil {
		return models.Booking{}, err
	}

	metrics.IncTransition(target)
	s.logger.Info().
		Str("booking_id", bookingID).
		Str("status", target).
		Str("actor", actor).
		Msg("Booking transition")

	s.publishEvent(eventType, updated[idx], actor)

	return updated[idx], nil
}

// RecordPayment adds to the advance paid and re-derives the payment
// fields. Overpayment is allowed; the derivation rule already defines
// the resulting state.
func (s *BookingService) RecordPayment(ctx context.Context, bookingID string, amount int64) (models.Booking, error) {
	if amount <= 0 {
		return models.Booking{}, ErrInvalidAmount
	}

	bookings := s.store.Bookings()
	idx := -1
	for i, b := range bookings {
		if b.ID == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Booking{}, ErrBookingNotFound
	}

	updated := append([]models.Booking(nil), bookings...)
	updated[idx].AdvancePaid += amount
	updated[idx].SyncPayment()
	if err := s.store.SaveBookings(ctx, updated); err != nil {
		return models.Booking{}, err
	}

	s.logger.Info().
		Str("booking_id", bookingID).
		Int64("amount", amount).
		Str("payment_status", updated[idx].PaymentStatus).
		Msg("Payment recorded")

	return updated[idx], nil
}

// ForCustomer returns the customer's bookings in collection order.
func (s *BookingService) ForCustomer(customerID string) []models.Booking {
	var out []models.Booking
	for _, b := range s.store.Bookings() {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out
}

// ForProvider returns the provider's bookings in collection order.
func (s *BookingService) ForProvider(providerID string) []models.Booking {
	var out []models.Booking
	for _, b := range s.store.Bookings() {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingService) publishEvent(eventType string, booking models.Booking, actor string) {
	err := s.eventBus.PublishJSON(eventType, events.BookingEventPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		EventType:  booking.EventType,
		EventDate:  booking.EventDate,
		Status:     booking.Status,
		ChangedBy:  actor,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("event", eventType).Msg("Failed to publish booking event")
	}
}
