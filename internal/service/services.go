// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/internal/store"
)

// SyncServices aggregates the service layer for wiring in the client.
type SyncServices struct {
	Planner Planner
	Fetcher Fetcher
	Syncer  Syncer
}

// NewSyncServices wires the planner, fetcher and orchestrator over the
// given collaborators.
func NewSyncServices(server adapter.ServerAdapter, st store.LocalStore, presenter Presenter, confirmer Confirmer, cfg *config.StructuredConfig, log *logger.Logger) *SyncServices {
	planner := NewPlanner(st, log)
	fetcher := NewFetcher(server, st, presenter, cfg.Download, log)
	syncer := NewSyncer(server, planner, fetcher, presenter, confirmer, cfg.Filter, log)

	return &SyncServices{
		Planner: planner,
		Fetcher: fetcher,
		Syncer:  syncer,
	}
}
