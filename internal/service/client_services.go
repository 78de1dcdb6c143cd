package service

import (
	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
)

type ClientServices struct {
	SyncService    ClientSyncService
	SessionService ClientSessionService
	FailureState   FailureState
}

func NewClientServices(collectionAdapter adapter.CollectionAdapter, logger *logger.Logger) *ClientServices {
	failure := newErrorState()
	syncSvc := NewClientSyncService(collectionAdapter, failure, logger)
	sessionSvc := NewClientSessionService(collectionAdapter, syncSvc, failure, logger)

	return &ClientServices{
		SyncService:    syncSvc,
		SessionService: sessionSvc,
		FailureState:   failure,
	}
}
