// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer of the catalog service: the
// database connectors for PostgreSQL and SQLite, the item repository, and the
// error classification used to tell transient database failures from final
// ones.
package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/item_repository_mock.go -package=mock

// ItemRepository defines persistence operations for catalog items. All reads
// return items ordered by name ascending with a byte-wise comparison, ties
// broken by id, so every caller observes the same stable order.
type ItemRepository interface {
	// GetAllItems returns every stored item in list order.
	GetAllItems(ctx context.Context) ([]models.CatalogItem, error)

	// GetItem returns the item identified by id.
	// Returns [ErrItemNotFound] if no such row exists.
	GetItem(ctx context.Context, id string) (models.CatalogItem, error)

	// SaveItem inserts a new item with an already assigned identifier.
	SaveItem(ctx context.Context, item models.CatalogItem) error

	// UpdateItem replaces the document fields of the row identified by
	// item.ID. Returns [ErrItemNotFound] if no such row exists.
	UpdateItem(ctx context.Context, item models.CatalogItem) error

	// DeleteItem removes the row identified by id.
	// Returns [ErrItemNotFound] if no such row exists.
	DeleteItem(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
