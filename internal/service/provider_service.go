package service

import (
	"context"

	"caterbook/internal/events"
	"caterbook/internal/models"
	"caterbook/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProviderService covers provider registration, admin approval and
// profile maintenance.
type ProviderService struct {
	store    *store.Store
	eventBus *events.EventBus
	logger   *zerolog.Logger
}

func NewProviderService(st *store.Store, eventBus *events.EventBus, logger *zerolog.Logger) *ProviderService {
	return &ProviderService{store: st, eventBus: eventBus, logger: logger}
}

// RegisterParams describes a new provider application.
type RegisterParams struct {
	Name          string
	Email         string
	Mobile        string
	Area          string
	Capacity      int
	Specialty     string
	Description   string
	PricePerPlate int64
	BulkDiscount  float64
	Dietary       []string
}

// Register stores a new provider awaiting admin approval.
func (s *ProviderService) Register(ctx context.Context, p RegisterParams) (models.Provider, error) {
	provider := models.Provider{
		ID:            uuid.NewString(),
		Name:          p.Name,
		Email:         p.Email,
		Mobile:        p.Mobile,
		Area:          p.Area,
		Capacity:      p.Capacity,
		Specialty:     p.Specialty,
		Description:   p.Description,
		PricePerPlate: p.PricePerPlate,
		BulkDiscount:  p.BulkDiscount,
		Dietary:       p.Dietary,
		Status:        models.ProviderPending,
		// Platform default until the admin adjusts it.
		CommissionRate: 10,
	}

	updated := append(append([]models.Provider(nil), s.store.Providers()...), provider)
	if err := s.store.SaveProviders(ctx, updated); err != nil {
		return models.Provider{}, err
	}

	s.logger.Info().Str("provider_id", provider.ID).Msg("Provider registered")
	return provider, nil
}

// Approve marks the provider as approved.
func (s *ProviderService) Approve(ctx context.Context, providerID, actor string) error {
	return s.setStatus(ctx, providerID, models.ProviderApproved, actor)
}

// Block marks the provider as blocked.
func (s *ProviderService) Block(ctx context.Context, providerID, actor string) error {
	return s.setStatus(ctx, providerID, models.ProviderBlocked, actor)
}

func (s *ProviderService) setStatus(ctx context.Context, providerID, status, actor string) error {
	providers := s.store.Providers()
	idx := -1
	for i, p := range providers {
		if p.ID == providerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrProviderNotFound
	}

	updated := append([]models.Provider(nil), providers...)
	updated[idx].Status = status
	if err := s.store.SaveProviders(ctx, updated); err != nil {
		return err
	}

	s.logger.Info().
		Str("provider_id", providerID).
		Str("status", status).
		Str("actor", actor).
		Msg("Provider status changed")

	err := s.eventBus.PublishJSON(events.EventProviderStatus, events.ProviderEventPayload{
		ProviderID: providerID,
		Status:     status,
		ChangedBy:  actor,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to publish provider event")
	}

	return nil
}

// ProfileParams are the fields a provider may edit on its own record.
type ProfileParams struct {
	Mobile        string
	Area          string
	Capacity      int
	Specialty     string
	Description   string
	PricePerPlate int64
	BulkDiscount  float64
	Dietary       []string
}

// UpdateProfile replaces the provider's editable fields. Approval
// status, rating and commission rate are not touchable here.
func (s *ProviderService) UpdateProfile(ctx context.Context, providerID string, p ProfileParams) (models.Provider, error) {
	providers := s.store.Providers()
	idx := -1
	for i, pr := range providers {
		if pr.ID == providerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Provider{}, ErrProviderNotFound
	}

	updated := append([]models.Provider(nil), providers...)
	updated[idx].Mobile = p.Mobile
	updated[idx].Area = p.Area
	updated[idx].Capacity = p.Capacity
	updated[idx].Specialty = p.Specialty
	updated[idx].Description = p.Description
	updated[idx].PricePerPlate = p.PricePerPlate
	updated[idx].BulkDiscount = p.BulkDiscount
	updated[idx].Dietary = p.Dietary
	if err := s.store.SaveProviders(ctx, updated); err != nil {
		return models.Provider{}, err
	}
	return updated[idx], nil
}

// Approved returns providers customers can book, in collection order.
func (s *ProviderService) Approved() []models.Provider {
	var out []models.Provider
	for _, p := range s.store.Providers() {
		if p.Status == models.ProviderApproved {
			out = append(out, p)
		}
	}
	return out
}
