package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpCollectionAdapter struct {
	client *resty.Client

	wsAddress string

	logger *logger.Logger
}

// NewHTTPCollectionAdapter constructs an HTTP/REST implementation of
// [CollectionAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. The websocket address from
// adapterCfg.WSAddress is kept for Subscribe.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCollectionAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CollectionAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCollectionAdapter{
		client:    client,
		wsAddress: adapterCfg.WSAddress,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Add implements [CollectionAdapter]. It POSTs the document body to
// POST /api/items and decodes the stored record, including the
// server-assigned identifier, from the response body.
func (h *httpCollectionAdapter) Add(ctx context.Context, doc models.ItemDocument) (models.CatalogItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/api/items")
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogItem{}, err
	}

	var item models.CatalogItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.CatalogItem{}, fmt.Errorf("decode add response: %w", err)
	}

	return item, nil
}

// UpdateByID implements [CollectionAdapter]. It PUTs the document body to
// PUT /api/items/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpCollectionAdapter) UpdateByID(ctx context.Context, id string, doc models.ItemDocument) (models.CatalogItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(doc).
		Put("/api/items/{id}")
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogItem{}, err
	}

	var item models.CatalogItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.CatalogItem{}, fmt.Errorf("decode update response: %w", err)
	}

	return item, nil
}

// DeleteByID implements [CollectionAdapter]. It sends a DELETE request to
// DELETE /api/items/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpCollectionAdapter) DeleteByID(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/items/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Subscribe implements [CollectionAdapter]. The snapshot feed itself is a
// websocket stream; see ws.go.
func (h *httpCollectionAdapter) Subscribe(ctx context.Context) (Subscription, error) {
	return newWSSubscription(ctx, h.wsAddress, h.logger)
}
