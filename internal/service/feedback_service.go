package service

import (
	"context"
	"time"

	"caterbook/internal/events"
	"caterbook/internal/models"
	"caterbook/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FeedbackService handles reviews, complaints and the notification
// register. Reviews and complaints never mutate the booking they
// reference.
type FeedbackService struct {
	store    *store.Store
	eventBus *events.EventBus
	logger   *zerolog.Logger
}

func NewFeedbackService(st *store.Store, eventBus *events.EventBus, logger *zerolog.Logger) *FeedbackService {
	return &FeedbackService{store: st, eventBus: eventBus, logger: logger}
}

// ReviewParams describes a customer review of a completed booking.
type ReviewParams struct {
	BookingID  string
	CustomerID string
	Rating     int
	Comment    string
	Image      string
}

// SubmitReview appends a review. Only completed bookings can be
// reviewed; the review collection is replaced wholesale like every
// other collection write.
func (s *FeedbackService) SubmitReview(ctx context.Context, p ReviewParams) (models.Review, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}

	booking, ok := s.store.BookingByID(p.BookingID)
	if !ok {
		return models.Review{}, ErrBookingNotFound
	}
	if booking.Status != models.StatusCompleted {
		return models.Review{}, ErrBookingNotCompleted
	}

	review := models.Review{
		ID:         uuid.NewString(),
		BookingID:  p.BookingID,
		CustomerID: p.CustomerID,
		ProviderID: booking.ProviderID,
		Rating:     p.Rating,
		Comment:    p.Comment,
		Image:      p.Image,
		CreatedAt:  time.Now(),
	}

	updated := append(append([]models.Review(nil), s.store.Reviews()...), review)
	if err := s.store.SaveReviews(ctx, updated); err != nil {
		return models.Review{}, err
	}

	s.logger.Info().Str("booking_id", p.BookingID).Int("rating", p.Rating).Msg("Review submitted")
	return review, nil
}

// ComplaintParams describes a complaint against a booking.
type ComplaintParams struct {
	BookingID string
	UserID    string
	Message   string
}

// SubmitComplaint files an open complaint. Permitted for bookings in
// any state.
func (s *FeedbackService) SubmitComplaint(ctx context.Context, p ComplaintParams) (models.Complaint, error) {
	booking, ok := s.store.BookingByID(p.BookingID)
	if !ok {
		return models.Complaint{}, ErrBookingNotFound
	}

	complaint := models.Complaint{
		ID:        uuid.NewString(),
		BookingID: p.BookingID,
		UserID:    p.UserID,
		Message:   p.Message,
		Status:    models.ComplaintOpen,
		CreatedAt: time.Now(),
	}

	updated := append(append([]models.Complaint(nil), s.store.Complaints()...), complaint)
	if err := s.store.SaveComplaints(ctx, updated); err != nil {
		return models.Complaint{}, err
	}

	err := s.eventBus.PublishJSON(events.EventComplaintFiled, events.BookingEventPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		EventType:  booking.EventType,
		EventDate:  booking.EventDate,
		Status:     booking.Status,
		ChangedBy:  p.UserID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to publish complaint event")
	}

	return complaint, nil
}

// ResolveComplaint closes an open complaint.
func (s *FeedbackService) ResolveComplaint(ctx context.Context, complaintID string) error {
	complaints := s.store.Complaints()
	idx := -1
	for i, c := range complaints {
		if c.ID == complaintID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrComplaintNotFound
	}

	updated := append([]models.Complaint(nil), complaints...)
	updated[idx].Status = models.ComplaintResolved
	return s.store.SaveComplaints(ctx, updated)
}

// NotificationsFor lists a user's notifications newest first.
func (s *FeedbackService) NotificationsFor(userID string) []models.Notification {
	var out []models.Notification
	for _, n := range s.store.Notifications() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flags one notification as read.
func (s *FeedbackService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	notifications := s.store.Notifications()
	idx := -1
	for i, n := range notifications {
		if n.ID == notificationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	updated := append([]models.Notification(nil), notifications...)
	updated[idx].Read = true
	return s.store.SaveNotifications(ctx, updated)
}

// ReviewsForProvider lists reviews left for a provider.
func (s *FeedbackService) ReviewsForProvider(providerID string) []models.Review {
	var out []models.Review
	for _, r := range s.store.Reviews() {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out
}
