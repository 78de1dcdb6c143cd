// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

type clientSessionService struct {
	adapter adapter.CollectionAdapter
	sync    ClientSyncService
	failure *errorState

	mu            sync.RWMutex
	phase         models.EditPhase
	targetID      string
	form          models.FormState
	pendingDelete string
	hasPending    bool

	logger *logger.Logger
}

// NewClientSessionService constructs the edit session. It reads the current
// list through syncService for target lookups and shares the failure slot
// with the sync side.
func NewClientSessionService(collectionAdapter adapter.CollectionAdapter, syncService ClientSyncService, failure *errorState, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter: collectionAdapter,
		sync:    syncService,
		failure: failure,
		logger:  logger,
	}
}

// BeginCreate implements [ClientSessionService].
func (s *clientSessionService) BeginCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// BeginEdit implements [ClientSessionService]. The form is filled from the
// list entry as it is right now; later snapshot churn leaves the draft alone.
func (s *clientSessionService) BeginEdit(id string) error {
	item, ok := s.sync.ItemByID(id)
	if !ok {
		return fmt.Errorf("begin edit %q: %w", id, ErrItemNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = models.PhaseEdit
	s.targetID = item.ID
	s.form = models.FormFromItem(item)

	return nil
}

// SetForm implements [ClientSessionService].
func (s *clientSessionService) SetForm(form models.FormState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// Form implements [ClientSessionService].
func (s *clientSessionService) Form() models.FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

// Phase implements [ClientSessionService].
func (s *clientSessionService) Phase() models.EditPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// TargetID implements [ClientSessionService].
func (s *clientSessionService) TargetID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.targetID
}

// Submit implements [ClientSessionService].
func (s *clientSessionService) Submit(ctx context.Context) error {
	s.mu.RLock()
	form := s.form
	phase := s.phase
	targetID := s.targetID
	s.mu.RUnlock()

	payload, err := validators.ValidateForm(form.Name, form.Price, form.Category, form.ImageURL)
	if err != nil {
		s.failure.set(&models.Failure{
			Kind:    models.FailureValidation,
			Message: err.Error(),
			Err:     err,
		})
		return fmt.Errorf("submit: %w", err)
	}

	doc := payload.Document()

	switch phase {
	case models.PhaseEdit:
		_, err = s.adapter.UpdateByID(ctx, targetID, doc)
	default:
		_, err = s.adapter.Add(ctx, doc)
	}
	if err != nil {
		// The draft survives so the user can retry or correct it.
		s.failure.set(&models.Failure{
			Kind:    models.FailureWrite,
			Message: err.Error(),
			Err:     err,
		})
		s.logger.Warn().Err(err).Str("target_id", targetID).Msg("write rejected")
		return fmt.Errorf("submit: %w", err)
	}

	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	s.failure.Clear()

	return nil
}

// Cancel implements [ClientSessionService].
func (s *clientSessionService) Cancel() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	s.failure.Clear()
}

// RequestDelete implements [ClientSessionService].
func (s *clientSessionService) RequestDelete(id string) error {
	if _, ok := s.sync.ItemByID(id); !ok {
		return fmt.Errorf("request delete %q: %w", id, ErrItemNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = id
	s.hasPending = true

	return nil
}

// PendingDelete implements [ClientSessionService].
func (s *clientSessionService) PendingDelete() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingDelete, s.hasPending
}

// ResolveDelete implements [ClientSessionService].
func (s *clientSessionService) ResolveDelete(ctx context.Context, confirmed bool) error {
	s.mu.Lock()
	id := s.pendingDelete
	hasPending := s.hasPending
	s.pendingDelete = ""
	s.hasPending = false
	s.mu.Unlock()

	if !hasPending {
		return ErrNoPendingDelete
	}
	if !confirmed {
		return nil
	}

	if err := s.adapter.DeleteByID(ctx, id); err != nil {
		s.failure.set(&models.Failure{
			Kind:    models.FailureWrite,
			Message: err.Error(),
			Err:     err,
		})
		s.logger.Warn().Err(err).Str("target_id", id).Msg("delete rejected")
		return fmt.Errorf("resolve delete: %w", err)
	}

	// A deleted edit target does not end the session. The draft stays; a
	// later submit runs against the vanished id and surfaces the service
	// rejection as a write failure.
	s.failure.Clear()

	return nil
}

// resetLocked returns the session to create mode with an empty form.
// Callers hold s.mu.
func (s *clientSessionService) resetLocked() {
	s.phase = models.PhaseCreate
	s.targetID = ""
	s.form = models.FormState{}
	s.pendingDelete = ""
	s.hasPending = false
}
