// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the catalog keeper, split
// into the server-side catalog service and the client-side sync and edit
// session services.
package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_service_mock.go -package=mock

// CatalogService defines the server-side contract for the catalog collection.
// Every mutation validates its document first and pushes a fresh snapshot to
// all attached subscribers on success.
type CatalogService interface {
	// List returns all stored items in the canonical list order.
	List(ctx context.Context) ([]models.CatalogItem, error)

	// Add validates doc, assigns a new identifier, and stores the item.
	Add(ctx context.Context, doc models.ItemDocument) (models.CatalogItem, error)

	// UpdateByID validates doc and replaces the body of the item identified
	// by id. Returns [ErrItemNotFound] (wrapped from the store) when no such
	// item exists.
	UpdateByID(ctx context.Context, id string, doc models.ItemDocument) (models.CatalogItem, error)

	// DeleteByID removes the item identified by id. Returns the store's
	// not-found error when no such item exists.
	DeleteByID(ctx context.Context, id string) error

	// Snapshot returns the current collection as one ordered snapshot.
	Snapshot(ctx context.Context) (models.Snapshot, error)

	// SubscribeSnapshots attaches a new snapshot subscriber. The returned
	// cancel function detaches it; calling cancel more than once is safe.
	SubscribeSnapshots() (<-chan models.Snapshot, func())
}
