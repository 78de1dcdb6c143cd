// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/gorilla/websocket"
)

// snapshotFrame is the wire shape of one pushed snapshot: the full ordered
// collection as a list of record entries.
type snapshotFrame struct {
	Items []json.RawMessage `json:"items"`
}

type wsSubscription struct {
	conn *websocket.Conn

	events chan SnapshotEvent
	done   chan struct{}

	cancelOnce sync.Once

	logger *logger.Logger
}

// newWSSubscription dials the snapshot endpoint and starts the read loop.
// The service pushes the current snapshot immediately after attach, so the
// first event arrives without any further request.
func newWSSubscription(ctx context.Context, wsAddress string, logger *logger.Logger) (Subscription, error) {
	if wsAddress == "" {
		return nil, fmt.Errorf("%w: empty websocket address", ErrSubscriptionClosed)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrSubscriptionClosed, wsAddress, err)
	}

	s := &wsSubscription{
		conn:   conn,
		events: make(chan SnapshotEvent, 1),
		done:   make(chan struct{}),
		logger: logger,
	}

	go s.readLoop()
	go func() {
		select {
		case <-ctx.Done():
			s.Cancel()
		case <-s.done:
		}
	}()

	return s, nil
}

// Events implements [Subscription].
func (s *wsSubscription) Events() <-chan SnapshotEvent {
	return s.events
}

// Cancel implements [Subscription]. Closing the connection unblocks the read
// loop, which then closes the events channel without emitting an error.
func (s *wsSubscription) Cancel() {
	s.cancelOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// readLoop receives snapshot frames until the connection fails or the
// subscription is cancelled. A read failure after Cancel is the expected
// shutdown path and is not reported as an error event.
func (s *wsSubscription) readLoop() {
	defer close(s.events)

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}

			s.events <- SnapshotEvent{Err: fmt.Errorf("snapshot feed: %w", err)}
			s.Cancel()
			return
		}

		snapshot, ok := s.decodeFrame(payload)
		if !ok {
			continue
		}

		select {
		case s.events <- SnapshotEvent{Snapshot: snapshot}:
		case <-s.done:
			return
		}
	}
}

// decodeFrame decodes one pushed frame into a snapshot. Decoding is
// best-effort per record: an entry that cannot be decoded at all or carries
// no identifier is dropped, an entry with individual malformed fields keeps
// its well-formed fields and gets zero values for the rest. A frame that is
// not a snapshot at all is skipped entirely.
func (s *wsSubscription) decodeFrame(payload []byte) (models.Snapshot, bool) {
	var frame snapshotFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		s.logger.Warn().Err(err).Msg("skipping malformed snapshot frame")
		return models.Snapshot{}, false
	}

	items := make([]models.CatalogItem, 0, len(frame.Items))
	for _, raw := range frame.Items {
		var item models.CatalogItem
		if err := json.Unmarshal(raw, &item); err != nil && item.ID == "" {
			s.logger.Warn().Err(err).Msg("dropping undecodable snapshot entry")
			continue
		}
		if item.ID == "" {
			s.logger.Warn().Msg("dropping snapshot entry without id")
			continue
		}
		items = append(items, item)
	}

	return models.Snapshot{Items: items}, true
}
