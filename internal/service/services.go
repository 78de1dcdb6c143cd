package service

import (
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
)

type Services struct {
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		CatalogService: NewCatalogService(storages.ItemRepository, validators.NewCatalogItemValidator(), logger),
	}
}
