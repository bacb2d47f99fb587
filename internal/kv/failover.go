package kv

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FailoverStore routes to the primary backend until it fails, then
// serves from the fallback, retrying the primary after a minute.
type FailoverStore struct {
	primary   Store
	fallback  Store
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverStore(primary, fallback Store, logger *zerolog.Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *FailoverStore) Get(ctx context.Context, name string) ([]byte, error) {
	if !s.isDown.Load() {
		data, err := s.primary.Get(ctx, name)
		if err == nil || err == ErrNotFound {
			return data, err
		}
		s.logger.Error().Err(err).Str("collection", name).Msg("Primary store failed, switching to fallback")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	// Try to recover after 1 minute
	if s.isDown.Load() && time.Since(s.lastCheck) > time.Minute {
		data, err := s.primary.Get(ctx, name)
		if err == nil || err == ErrNotFound {
			s.isDown.Store(false)
			return data, err
		}
		s.lastCheck = time.Now()
	}

	return s.fallback.Get(ctx, name)
}

func (s *FailoverStore) Put(ctx context.Context, name string, data []byte) error {
	if !s.isDown.Load() {
		err := s.primary.Put(ctx, name, data)
		if err == nil {
			// Keep the fallback warm so a failover mid-run still sees
			// the latest collections.
			_ = s.fallback.Put(ctx, name, data)
			return nil
		}
		s.logger.Error().Err(err).Str("collection", name).Msg("Primary store failed, switching to fallback")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	return s.fallback.Put(ctx, name, data)
}

func (s *FailoverStore) Close() error {
	if err := s.primary.Close(); err != nil {
		return err
	}
	return s.fallback.Close()
}
