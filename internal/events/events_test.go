package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusPublishSubscribe(t *testing.T) {
	bus := NewEventBus()

	var received []*Event
	bus.Subscribe(EventBookingCreated, func(event *Event) error {
		received = append(received, event)
		return nil
	})

	payload := BookingEventPayload{
		BookingID:  "booking1",
		CustomerID: "customer1",
		ProviderID: "provider1",
		EventType:  "wedding",
		EventDate:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Status:     "pending",
	}
	require.NoError(t, bus.PublishJSON(EventBookingCreated, payload))

	require.Len(t, received, 1)
	assert.Equal(t, EventBookingCreated, received[0].Type)
	assert.False(t, received[0].CreatedAt.IsZero())

	var decoded BookingEventPayload
	require.NoError(t, json.Unmarshal(received[0].Payload, &decoded))
	assert.Equal(t, payload.BookingID, decoded.BookingID)
	assert.Equal(t, payload.ProviderID, decoded.ProviderID)
}

func TestEventBusIgnoresOtherTypes(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	bus.Subscribe(EventBookingConfirmed, func(event *Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.PublishJSON(EventBookingCancelled, BookingEventPayload{BookingID: "b1"}))
	assert.Zero(t, calls)
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	failing := func(event *Event) error {
		calls++
		return errors.New("handler failed")
	}
	bus.Subscribe(EventProviderStatus, failing)
	bus.Subscribe(EventProviderStatus, failing)

	// A failing handler does not stop the others.
	require.NoError(t, bus.PublishJSON(EventProviderStatus, ProviderEventPayload{ProviderID: "provider1", Status: "blocked"}))
	assert.Equal(t, 2, calls)
}

func TestNewJSONEvent(t *testing.T) {
	event, err := NewJSONEvent(EventBookingCompleted, BookingEventPayload{BookingID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, EventBookingCompleted, event.Type)
	assert.Contains(t, string(event.Payload), "b1")
}

func TestPublishJSONOnNilBus(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishJSON(EventBookingCreated, BookingEventPayload{}))
}
