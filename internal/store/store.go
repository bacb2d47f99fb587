package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"caterbook/internal/kv"
	"caterbook/internal/metrics"
	"caterbook/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the single source of truth for all collections. Every
// mutation replaces a whole named collection in memory and writes the
// serialized slice to the durable backend in the same call. There are
// no cross-collection transactions; callers that need a booking write
// plus a notification write issue two independent replacements.
//
// The store assumes a single-threaded caller.
type Store struct {
	kv     kv.Store
	logger *zerolog.Logger

	providers     []models.Provider
	bookings      []models.Booking
	menuItems     []models.MenuItem
	packages      []models.Package
	reviews       []models.Review
	notifications []models.Notification
	complaints    []models.Complaint
	favorites     []models.Favorite
}

func New(backend kv.Store, logger *zerolog.Logger) *Store {
	return &Store{kv: backend, logger: logger}
}

// Load reads every collection from the durable backend. An entirely
// empty backend is seeded with the fixture dataset first. Malformed
// data for one collection degrades that collection to empty without
// affecting the others.
func (s *Store) Load(ctx context.Context) error {
	if _, err := s.kv.Get(ctx, models.CollectionProviders); err == kv.ErrNotFound {
		s.logger.Info().Msg("Empty store, writing seed dataset")
		return s.seed(ctx)
	} else if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	loadCollection(ctx, s, models.CollectionProviders, &s.providers)
	loadCollection(ctx, s, models.CollectionBookings, &s.bookings)
	loadCollection(ctx, s, models.CollectionMenuItems, &s.menuItems)
	loadCollection(ctx, s, models.CollectionPackages, &s.packages)
	loadCollection(ctx, s, models.CollectionReviews, &s.reviews)
	loadCollection(ctx, s, models.CollectionNotifications, &s.notifications)
	loadCollection(ctx, s, models.CollectionComplaints, &s.complaints)
	loadCollection(ctx, s, models.CollectionFavorites, &s.favorites)

	return nil
}

func loadCollection[T any](ctx context.Context, s *Store, name string, dst *[]T) {
	*dst = nil

	data, err := s.kv.Get(ctx, name)
	if err == kv.ErrNotFound {
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Str("collection", name).Msg("Failed to read collection, treating as empty")
		return
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn().Err(err).Str("collection", name).Msg("Malformed collection data, treating as empty")
		*dst = nil
	}
}

// replaceCollection is the single mutation primitive: marshal the new
// value and write it under the collection name. All-or-nothing per
// collection.
func (s *Store) replaceCollection(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}

	if err := s.kv.Put(ctx, name, data); err != nil {
		return fmt.Errorf("persist collection %s: %w", name, err)
	}

	metrics.IncStoreWrite(name)
	return nil
}

func (s *Store) Providers() []models.Provider         { return s.providers }
func (s *Store) Bookings() []models.Booking           { return s.bookings }
func (s *Store) MenuItems() []models.MenuItem         { return s.menuItems }
func (s *Store) Packages() []models.Package           { return s.packages }
func (s *Store) Reviews() []models.Review             { return s.reviews }
func (s *Store) Notifications() []models.Notification { return s.notifications }
func (s *Store) Complaints() []models.Complaint       { return s.complaints }
func (s *Store) Favorites() []models.Favorite         { return s.favorites }

func (s *Store) SaveProviders(ctx context.Context, providers []models.Provider) error {
	if err := s.replaceCollection(ctx, models.CollectionProviders, providers); err != nil {
		return err
	}
	s.providers = providers
	return nil
}

func (s *Store) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	if err := s.replaceCollection(ctx, models.CollectionBookings, bookings); err != nil {
		return err
	}
	s.bookings = bookings
	return nil
}

func (s *Store) SaveMenuItems(ctx context.Context, items []models.MenuItem) error {
	if err := s.replaceCollection(ctx, models.CollectionMenuItems, items); err != nil {
		return err
	}
	s.menuItems = items
	return nil
}

func (s *Store) SavePackages(ctx context.Context, packages []models.Package) error {
	if err := s.replaceCollection(ctx, models.CollectionPackages, packages); err != nil {
		return err
	}
	s.packages = packages
	return nil
}

func (s *Store) SaveReviews(ctx context.Context, reviews []models.Review) error {
	if err := s.replaceCollection(ctx, models.CollectionReviews, reviews); err != nil {
		return err
	}
	s.reviews = reviews
	return nil
}

func (s *Store) SaveNotifications(ctx context.Context, notifications []models.Notification) error {
	if err := s.replaceCollection(ctx, models.CollectionNotifications, notifications); err != nil {
		return err
	}
	s.notifications = notifications
	return nil
}

func (s *Store) SaveComplaints(ctx context.Context, complaints []models.Complaint) error {
	if err := s.replaceCollection(ctx, models.CollectionComplaints, complaints); err != nil {
		return err
	}
	s.complaints = complaints
	return nil
}

func (s *Store) SaveFavorites(ctx context.Context, favorites []models.Favorite) error {
	if err := s.replaceCollection(ctx, models.CollectionFavorites, favorites); err != nil {
		return err
	}
	s.favorites = favorites
	return nil
}

// ToggleFavorite removes the (customer, provider) pair if present,
// appends it otherwise. Toggling twice restores the original content.
func (s *Store) ToggleFavorite(ctx context.Context, customerID, providerID string) error {
	updated := make([]models.Favorite, 0, len(s.favorites)+1)
	found := false
	for _, f := range s.favorites {
		if f.CustomerID == customerID && f.ProviderID == providerID {
			found = true
			continue
		}
		updated = append(updated, f)
	}
	if !found {
		updated = append(updated, models.Favorite{CustomerID: customerID, ProviderID: providerID})
	}

	return s.SaveFavorites(ctx, updated)
}

// AddNotification assigns an id and creation timestamp and prepends
// the notification so readers see newest first.
func (s *Store) AddNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()

	updated := append([]models.Notification{n}, s.notifications...)
	if err := s.SaveNotifications(ctx, updated); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (s *Store) ProviderByID(id string) (models.Provider, bool) {
	for _, p := range s.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

func (s *Store) BookingByID(id string) (models.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *Store) MenuItemByID(id string) (models.MenuItem, bool) {
	for _, m := range s.menuItems {
		if m.ID == id {
			return m, true
		}
	}
	return models.MenuItem{}, false
}

func (s *Store) PackageByID(id string) (models.Package, bool) {
	for _, p := range s.packages {
		if p.ID == id {
			return p, true
		}
	}
	return models.Package{}, false
}

// ProviderName resolves a provider reference for display. Dangling
// references resolve to the unknown placeholder, never an error.
func (s *Store) ProviderName(id string) string {
	if p, ok := s.ProviderByID(id); ok {
		return p.Name
	}
	return models.UnknownName
}

// PackageName resolves a package reference for display.
func (s *Store) PackageName(id string) string {
	if p, ok := s.PackageByID(id); ok {
		return p.Name
	}
	return models.UnknownName
}
