// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// errorState is the shared single failure slot. The sync service records
// transport failures into it, the session service records validation and
// write failures. A new failure of any kind replaces the held one.
type errorState struct {
	mu      sync.RWMutex
	failure *models.Failure
}

func newErrorState() *errorState {
	return &errorState{}
}

// Failure implements [FailureState].
func (s *errorState) Failure() *models.Failure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failure
}

// Clear implements [FailureState].
func (s *errorState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = nil
}

// set replaces the held failure.
func (s *errorState) set(f *models.Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = f
}

