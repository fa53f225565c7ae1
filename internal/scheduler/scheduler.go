// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic housekeeping jobs: audit event pruning
// and GeoIP database refresh.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pronimal/pronim-admin/internal/geoip"
	"github.com/pronimal/pronim-admin/internal/store"
)

// EventRetention is how long audit events are kept before pruning.
const EventRetention = 90 * 24 * time.Hour

// Scheduler handles periodic background jobs.
type Scheduler struct {
	db     *sql.DB
	geo    *geoip.Lookup
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance. geo may be nil when GeoIP is
// disabled.
func New(db *sql.DB, geo *geoip.Lookup, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		geo:    geo,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the housekeeping jobs and begins the scheduler.
func (s *Scheduler) Start() error {
	// Prune old audit events daily at 03:00
	if _, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.pruneEvents(); err != nil {
			s.logger.Error("failed to prune audit events", "error", err)
		}
	}); err != nil {
		return err
	}

	// Reload the GeoIP database daily at 04:00 in case it was updated
	if s.geo != nil {
		if _, err := s.cron.AddFunc("0 4 * * *", func() {
			if err := s.geo.Reload(); err != nil {
				s.logger.Warn("failed to reload GeoIP database", "error", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// pruneEvents removes audit events older than the retention window.
func (s *Scheduler) pruneEvents() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	queries := store.New(s.db)
	cutoff := time.Now().UTC().Add(-EventRetention)

	removed, err := queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if removed > 0 {
		s.logger.Info("pruned audit events", "removed", removed, "cutoff", cutoff)
	}
	return nil
}
