// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

type clientSyncService struct {
	adapter adapter.CollectionAdapter
	failure *errorState

	mu         sync.RWMutex
	items      []models.CatalogItem
	generation uint64
	sub        adapter.Subscription

	updates chan struct{}

	logger *logger.Logger
}

// NewClientSyncService constructs the snapshot mirror. The failure slot is
// shared with the session service; the sync side only ever records and clears
// transport failures in it.
func NewClientSyncService(collectionAdapter adapter.CollectionAdapter, failure *errorState, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		adapter: collectionAdapter,
		failure: failure,
		updates: make(chan struct{}, 1),
		logger:  logger,
	}
}

// Start implements [ClientSyncService]. Bumping the generation before the new
// subscription attaches makes any event still in flight from a previous feed
// a no-op.
func (s *clientSyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	if s.sub != nil {
		s.sub.Cancel()
		s.sub = nil
	}
	s.mu.Unlock()

	sub, err := s.adapter.Subscribe(ctx)
	if err != nil {
		s.failure.set(&models.Failure{
			Kind:    models.FailureTransport,
			Message: "collection feed unavailable",
			Err:     err,
		})
		s.notify()
		return fmt.Errorf("start snapshot sync: %w", err)
	}

	s.mu.Lock()
	if generation != s.generation {
		// Start raced with a newer Start or Stop; this feed lost.
		s.mu.Unlock()
		sub.Cancel()
		return nil
	}
	s.sub = sub
	s.mu.Unlock()

	go s.consume(generation, sub)

	return nil
}

// Stop implements [ClientSyncService].
func (s *clientSyncService) Stop() {
	s.mu.Lock()
	s.generation++
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

// Items implements [ClientSyncService].
func (s *clientSyncService) Items() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemByID implements [ClientSyncService].
func (s *clientSyncService) ItemByID(id string) (models.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// Updates implements [ClientSyncService].
func (s *clientSyncService) Updates() <-chan struct{} {
	return s.updates
}

// consume drains one subscription until it terminates. Events belonging to a
// stale generation are dropped without touching the list or the failure slot.
func (s *clientSyncService) consume(generation uint64, sub adapter.Subscription) {
	for ev := range sub.Events() {
		if !s.currentGeneration(generation) {
			return
		}

		if ev.Err != nil {
			// The list keeps its last good contents.
			s.failure.set(&models.Failure{
				Kind:    models.FailureTransport,
				Message: "collection feed lost",
				Err:     ev.Err,
			})
			s.logger.Warn().Err(ev.Err).Msg("snapshot feed terminated")
			s.notify()
			return
		}

		s.replaceItems(generation, ev.Snapshot.Items)
	}
}

// replaceItems swaps the whole list in one step and clears the failure slot.
// A successful snapshot clears whatever failure is held, not just transport
// ones. Readers never observe a partially applied snapshot.
func (s *clientSyncService) replaceItems(generation uint64, items []models.CatalogItem) {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return
	}
	s.items = items
	s.mu.Unlock()

	s.failure.Clear()
	s.notify()
}

func (s *clientSyncService) currentGeneration(generation uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return generation == s.generation
}

// notify delivers a coalescing signal on the updates channel.
func (s *clientSyncService) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
