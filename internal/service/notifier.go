package service

import (
	"context"
	"encoding/json"
	"fmt"

	"caterbook/internal/events"
	"caterbook/internal/models"
	"caterbook/internal/store"

	"github.com/rs/zerolog"
)

// AdminUserID is the recipient of platform-level notifications.
const AdminUserID = "admin"

// Notifier turns booking events into user notifications. The
// notification write is independent of the booking write that caused
// it; losing one between the two leaves the booking authoritative.
type Notifier struct {
	store  *store.Store
	logger *zerolog.Logger
}

func NewNotifier(st *store.Store, logger *zerolog.Logger) *Notifier {
	return &Notifier{store: st, logger: logger}
}

// Subscribe registers the notifier on the bus.
func (n *Notifier) Subscribe(bus *events.EventBus) {
	bus.Subscribe(events.EventBookingCreated, n.onBookingEvent)
	bus.Subscribe(events.EventBookingConfirmed, n.onBookingEvent)
	bus.Subscribe(events.EventBookingCancelled, n.onBookingEvent)
	bus.Subscribe(events.EventBookingCompleted, n.onBookingEvent)
	bus.Subscribe(events.EventComplaintFiled, n.onComplaintFiled)
}

func (n *Notifier) onBookingEvent(event *events.Event) error {
	var payload events.BookingEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		n.logger.Error().Err(err).Str("event", event.Type).Msg("Failed to decode booking event")
		return err
	}

	var userID, message, kind string
	switch event.Type {
	case events.EventBookingCreated:
		userID = payload.ProviderID
		kind = models.NotificationBooking
		message = fmt.Sprintf("New booking request for %s", payload.EventType)
	case events.EventBookingConfirmed:
		userID = payload.CustomerID
		kind = models.NotificationStatus
		message = fmt.Sprintf("Your %s booking on %s has been confirmed", payload.EventType, payload.EventDate.Format("2006-01-02"))
	case events.EventBookingCancelled:
		userID = payload.CustomerID
		kind = models.NotificationStatus
		message = fmt.Sprintf("Your %s booking on %s has been cancelled", payload.EventType, payload.EventDate.Format("2006-01-02"))
	case events.EventBookingCompleted:
		userID = payload.CustomerID
		kind = models.NotificationStatus
		message = fmt.Sprintf("Your %s booking has been completed, you can now leave a review", payload.EventType)
	default:
		return nil
	}

	return n.push(userID, kind, message)
}

func (n *Notifier) onComplaintFiled(event *events.Event) error {
	var payload events.BookingEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		n.logger.Error().Err(err).Msg("Failed to decode complaint event")
		return err
	}

	message := fmt.Sprintf("New complaint filed for booking %s", payload.BookingID)
	return n.push(AdminUserID, models.NotificationComplaint, message)
}

func (n *Notifier) push(userID, kind, message string) error {
	_, err := n.store.AddNotification(context.Background(), models.Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to store notification")
	}
	return err
}
