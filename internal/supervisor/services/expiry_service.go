// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package services

import (
	"context"
	"time"

	"github.com/scholarmach/scholarmach/internal/logging"
)

// ExpiryStore is the storage surface the sweeper needs. Satisfied by
// *database.DB.
type ExpiryStore interface {
	ExpireScholarships(ctx context.Context, now time.Time) (int64, error)
}

// ExpiryService periodically deactivates scholarships whose application
// deadline has passed, so they stop appearing in the catalog and in
// recommendation candidate sets.
type ExpiryService struct {
	store    ExpiryStore
	interval time.Duration
	name     string
}

// NewExpiryService creates the sweeper. A non-positive interval falls
// back to one hour.
func NewExpiryService(store ExpiryStore, interval time.Duration) *ExpiryService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpiryService{
		store:    store,
		interval: interval,
		name:     "deadline-expiry",
	}
}

// Serve implements suture.Service. One sweep runs immediately on start,
// then on every tick. Sweep errors are logged and returned so suture
// applies its restart policy.
func (s *ExpiryService) Serve(ctx context.Context) error {
	if err := s.sweep(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *ExpiryService) sweep(ctx context.Context) error {
	n, err := s.store.ExpireScholarships(ctx, time.Now())
	if err != nil {
		logging.Error().Err(err).Msg("Deadline expiry sweep failed")
		return err
	}
	if n > 0 {
		logging.Info().Int64("expired", n).Msg("Deactivated past-deadline scholarships")
	}
	return nil
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *ExpiryService) String() string {
	return s.name
}
