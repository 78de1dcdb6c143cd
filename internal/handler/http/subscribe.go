// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// snapshotFrame mirrors the wire shape the client adapter decodes.
type snapshotFrame struct {
	Items []models.CatalogItem `json:"items"`
}

// subscribe upgrades the connection and streams collection snapshots to it:
// the current snapshot right away, then a fresh one after every mutation.
// The stream ends when the client disconnects or a write fails.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.subscribe").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, cancel := h.services.CatalogService.SubscribeSnapshots()
	defer cancel()

	// first frame: the state as of attach
	initial, err := h.services.CatalogService.Snapshot(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.subscribe").Msg("failed to load initial snapshot")
		return
	}
	if err = writeSnapshot(conn, initial); err != nil {
		log.Debug().Err(err).Msg("subscriber gone before initial snapshot")
		return
	}

	// the read pump only detects the client closing the connection
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	log.Info().Msg("snapshot subscriber attached")

	for {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}
			if err = writeSnapshot(conn, snapshot); err != nil {
				log.Debug().Err(err).Msg("subscriber write failed, detaching")
				return
			}
		case <-done:
			log.Info().Msg("snapshot subscriber detached")
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snapshot models.Snapshot) error {
	frame := snapshotFrame{Items: snapshot.Items}
	if frame.Items == nil {
		frame.Items = []models.CatalogItem{}
	}
	return conn.WriteJSON(frame)
}
