// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/mock"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockCatalogService) {
	t.Helper()
	mockSvc := mock.NewMockCatalogService(ctrl)
	h := NewHandler(&service.Services{CatalogService: mockSvc}, logger.Nop())
	return h, mockSvc
}

func doJSON(t *testing.T, h *Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── GET /api/items ──────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)

	want := []models.CatalogItem{
		{ID: "id-2", Name: "Bolt", Price: 1.2, Category: "Hardware"},
		{ID: "id-1", Name: "Widget", Price: 12.5, Category: "Tools"},
	}
	mockSvc.EXPECT().List(gomock.Any()).Return(want, nil)

	rec := doJSON(t, h, http.MethodGet, "/api/items", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestList_EmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := doJSON(t, h, http.MethodGet, "/api/items", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// пустая коллекция сериализуется как [], а не null
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestList_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rec := doJSON(t, h, http.MethodGet, "/api/items", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── POST /api/items ─────────────────────────────────────────────────────────

func TestAdd_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)

	doc := models.ItemDocument{Name: "Widget", Price: 12.5, Category: "Tools"}
	created := models.CatalogItem{ID: "id-1", Name: "Widget", Price: 12.5, Category: "Tools"}
	mockSvc.EXPECT().Add(gomock.Any(), doc).Return(created, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/items", doc)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestAdd_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdd_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)

	doc := models.ItemDocument{Name: "Widget", Price: -1, Category: "Tools"}
	mockSvc.EXPECT().Add(gomock.Any(), doc).Return(models.CatalogItem{}, validators.ErrInvalidPrice)

	rec := doJSON(t, h, http.MethodPost, "/api/items", doc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price")
}

// ── PUT /api/items/{id} ─────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)

	doc := models.ItemDocument{Name: "Widget v2", Price: 15, Category: "Tools"}
	updated := models.CatalogItem{ID: "id-1", Name: "Widget v2", Price: 15, Category: "Tools"}
	mockSvc.EXPECT().UpdateByID(gomock.Any(), "id-1", doc).Return(updated, nil)

	rec := doJSON(t, h, http.MethodPut, "/api/items/id-1", doc)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CatalogItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, updated, got)
}

func TestUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)

	doc := models.ItemDocument{Name: "x", Price: 1, Category: "c"}
	mockSvc.EXPECT().UpdateByID(gomock.Any(), "missing", doc).Return(models.CatalogItem{}, store.ErrItemNotFound)

	rec := doJSON(t, h, http.MethodPut, "/api/items/missing", doc)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ── DELETE /api/items/{id} ──────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().DeleteByID(gomock.Any(), "id-1").Return(nil)

	rec := doJSON(t, h, http.MethodDelete, "/api/items/id-1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().DeleteByID(gomock.Any(), "missing").Return(store.ErrItemNotFound)

	rec := doJSON(t, h, http.MethodDelete, "/api/items/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ── Middleware ──────────────────────────────────────────────────────────────

func TestTraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := doJSON(t, h, http.MethodGet, "/api/items", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceIDHeaderIsPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockSvc := newTestHandler(t, ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
