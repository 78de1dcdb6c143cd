// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the catalog collection service.
//
// The primary abstraction is [CollectionAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation for writes ([NewHTTPCollectionAdapter]) and a websocket
// implementation of the snapshot subscription.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_adapter_mock.go -package=mock

// SnapshotEvent is a single delivery on a snapshot subscription: either one
// complete collection snapshot or a terminal transport error. Exactly one of
// the two fields is set.
type SnapshotEvent struct {
	Snapshot models.Snapshot
	Err      error
}

// Subscription is a live snapshot feed from the collection service.
type Subscription interface {
	// Events returns the channel on which snapshots and the terminal error
	// are delivered. The channel is closed after a terminal error or after
	// Cancel.
	Events() <-chan SnapshotEvent

	// Cancel detaches from the feed and releases the underlying connection.
	// It is safe to call multiple times and after the feed has already
	// terminated; only the first call has effect.
	Cancel()
}

// CollectionAdapter defines transport-agnostic communication with the catalog
// collection service. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in this
// package.
type CollectionAdapter interface {
	// Add creates a new record from doc. The service assigns the identifier
	// and returns the stored item. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	Add(ctx context.Context, doc models.ItemDocument) (models.CatalogItem, error)

	// UpdateByID replaces the document body of the record identified by id.
	// Returns [ErrNotFound] (wrapped) if no record with that id exists.
	UpdateByID(ctx context.Context, id string, doc models.ItemDocument) (models.CatalogItem, error)

	// DeleteByID removes the record identified by id. Returns [ErrNotFound]
	// (wrapped) if no record with that id exists.
	DeleteByID(ctx context.Context, id string) error

	// Subscribe opens the live snapshot feed. The service pushes one complete
	// snapshot immediately after attach and a fresh one after every
	// collection change. The feed stays open until Cancel or a transport
	// failure.
	Subscribe(ctx context.Context) (Subscription, error)
}
