// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/google/uuid"
)

type catalogService struct {
	repository store.ItemRepository
	validator  validators.Validator
	hub        *snapshotHub

	logger *logger.Logger
}

// NewCatalogService constructs the server-side catalog service on top of the
// item repository. Documents are checked with validator before any write
// reaches the store.
func NewCatalogService(repository store.ItemRepository, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		repository: repository,
		validator:  validator,
		hub:        newSnapshotHub(),
		logger:     logger,
	}
}

// List implements [CatalogService]. Ordering comes from the repository, so
// every caller and every pushed snapshot agree on it.
func (s *catalogService) List(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := s.repository.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Add implements [CatalogService].
func (s *catalogService) Add(ctx context.Context, doc models.ItemDocument) (models.CatalogItem, error) {
	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.CatalogItem{}, fmt.Errorf("add item: %w", err)
	}

	item := models.CatalogItem{
		ID:       uuid.NewString(),
		Name:     doc.Name,
		Price:    doc.Price,
		Category: doc.Category,
		ImageURL: doc.ImageURL,
	}

	if err := s.repository.SaveItem(ctx, item); err != nil {
		return models.CatalogItem{}, fmt.Errorf("add item: %w", err)
	}

	s.publishSnapshot(ctx)

	return item, nil
}

// UpdateByID implements [CatalogService].
func (s *catalogService) UpdateByID(ctx context.Context, id string, doc models.ItemDocument) (models.CatalogItem, error) {
	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.CatalogItem{}, fmt.Errorf("update item: %w", err)
	}

	item := models.CatalogItem{
		ID:       id,
		Name:     doc.Name,
		Price:    doc.Price,
		Category: doc.Category,
		ImageURL: doc.ImageURL,
	}

	if err := s.repository.UpdateItem(ctx, item); err != nil {
		return models.CatalogItem{}, fmt.Errorf("update item %s: %w", id, err)
	}

	s.publishSnapshot(ctx)

	return item, nil
}

// DeleteByID implements [CatalogService].
func (s *catalogService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}

	s.publishSnapshot(ctx)

	return nil
}

// Snapshot implements [CatalogService].
func (s *catalogService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	items, err := s.List(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{Items: items}, nil
}

// SubscribeSnapshots implements [CatalogService].
func (s *catalogService) SubscribeSnapshots() (<-chan models.Snapshot, func()) {
	return s.hub.subscribe()
}

// publishSnapshot pushes the post-mutation state of the collection to all
// subscribers. A failed re-read is logged and swallowed: the mutation itself
// already succeeded and subscribers recover on the next push.
func (s *catalogService) publishSnapshot(ctx context.Context) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "catalogService.publishSnapshot").Msg("failed to load snapshot for broadcast")
		return
	}

	s.hub.publish(snapshot)
}
