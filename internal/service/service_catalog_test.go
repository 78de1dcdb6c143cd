// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/mock"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (CatalogService, *mock.MockItemRepository) {
	t.Helper()
	mockRepo := mock.NewMockItemRepository(ctrl)
	svc := NewCatalogService(mockRepo, validators.NewCatalogItemValidator(), logger.Nop())
	return svc, mockRepo
}

func receiveSnapshot(t *testing.T, ch <-chan models.Snapshot) models.Snapshot {
	t.Helper()
	select {
	case snapshot := <-ch:
		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published snapshot")
		return models.Snapshot{}
	}
}

// ── List ────────────────────────────────────────────────────────────────────

func TestCatalog_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	want := []models.CatalogItem{
		{ID: "id-2", Name: "Bolt", Price: 1.2, Category: "Hardware"},
		{ID: "id-1", Name: "Widget", Price: 12.5, Category: "Tools"},
	}
	mockRepo.EXPECT().GetAllItems(ctx).Return(want, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalog_List_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetAllItems(ctx).Return(nil, errors.New("db down"))

	_, err := svc.List(ctx)

	require.Error(t, err)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestCatalog_Add_AssignsIDAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()
	doc := models.ItemDocument{Name: "Widget", Price: 12.5, Category: "Tools"}

	var savedID string
	mockRepo.EXPECT().SaveItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.CatalogItem) error {
			savedID = item.ID
			return nil
		})
	// после записи сервис перечитывает коллекцию для рассылки
	mockRepo.EXPECT().GetAllItems(ctx).Return([]models.CatalogItem{{ID: "id-1", Name: "Widget"}}, nil)

	ch, cancel := svc.SubscribeSnapshots()
	defer cancel()

	item, err := svc.Add(ctx, doc)

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, savedID, item.ID)
	assert.Equal(t, "Widget", item.Name)

	snapshot := receiveSnapshot(t, ch)
	require.Len(t, snapshot.Items, 1)
}

func TestCatalog_Add_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// репозиторий не трогаем: невалидный документ не доходит до записи
	svc, _ := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.ItemDocument{Name: "Widget", Price: -1, Category: "Tools"})

	require.ErrorIs(t, err, validators.ErrInvalidPrice)
}

// ── UpdateByID ──────────────────────────────────────────────────────────────

func TestCatalog_UpdateByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()
	doc := models.ItemDocument{Name: "Widget v2", Price: 15, Category: "Tools"}

	mockRepo.EXPECT().UpdateItem(ctx, models.CatalogItem{
		ID: "id-1", Name: "Widget v2", Price: 15, Category: "Tools",
	}).Return(nil)
	mockRepo.EXPECT().GetAllItems(ctx).Return(nil, nil)

	item, err := svc.UpdateByID(ctx, "id-1", doc)

	require.NoError(t, err)
	assert.Equal(t, "id-1", item.ID)
}

func TestCatalog_UpdateByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateItem(ctx, gomock.Any()).Return(store.ErrItemNotFound)

	_, err := svc.UpdateByID(ctx, "missing", models.ItemDocument{Name: "x", Price: 1, Category: "c"})

	require.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestCatalog_UpdateByID_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)

	_, err := svc.UpdateByID(context.Background(), "id-1", models.ItemDocument{Price: 1, Category: "c"})

	require.ErrorIs(t, err, validators.ErrMissingRequiredField)
}

// ── DeleteByID ──────────────────────────────────────────────────────────────

func TestCatalog_DeleteByID_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteItem(ctx, "id-1").Return(nil)
	mockRepo.EXPECT().GetAllItems(ctx).Return(nil, nil)

	require.NoError(t, svc.DeleteByID(ctx, "id-1"))
}

func TestCatalog_DeleteByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteItem(ctx, "missing").Return(store.ErrItemNotFound)

	require.ErrorIs(t, svc.DeleteByID(ctx, "missing"), store.ErrItemNotFound)
}

// ── Broadcast hub ───────────────────────────────────────────────────────────

func TestSnapshotHub_FanOut(t *testing.T) {
	hub := newSnapshotHub()

	first, cancelFirst := hub.subscribe()
	second, cancelSecond := hub.subscribe()
	defer cancelFirst()
	defer cancelSecond()

	snapshot := models.Snapshot{Items: []models.CatalogItem{{ID: "id-1"}}}
	hub.publish(snapshot)

	assert.Equal(t, snapshot, receiveSnapshot(t, first))
	assert.Equal(t, snapshot, receiveSnapshot(t, second))
}

// Медленный подписчик видит только самый свежий снапшот.
func TestSnapshotHub_SlowSubscriberGetsLatest(t *testing.T) {
	hub := newSnapshotHub()

	ch, cancel := hub.subscribe()
	defer cancel()

	hub.publish(models.Snapshot{Items: []models.CatalogItem{{ID: "old"}}})
	hub.publish(models.Snapshot{Items: []models.CatalogItem{{ID: "new"}}})

	got := receiveSnapshot(t, ch)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "new", got.Items[0].ID)
}

func TestSnapshotHub_CancelIsIdempotent(t *testing.T) {
	hub := newSnapshotHub()

	ch, cancel := hub.subscribe()
	cancel()
	cancel()

	// после отписки канал закрыт и публикации не доставляются
	hub.publish(models.Snapshot{})
	_, ok := <-ch
	assert.False(t, ok)
}
