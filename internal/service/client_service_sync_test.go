// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/mock"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSubscription — управляемая из теста подписка на снапшоты
type fakeSubscription struct {
	events  chan adapter.SnapshotEvent
	cancels atomic.Int32
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{events: make(chan adapter.SnapshotEvent, 8)}
}

func (f *fakeSubscription) Events() <-chan adapter.SnapshotEvent { return f.events }
func (f *fakeSubscription) Cancel()                              { f.cancels.Add(1) }

func (f *fakeSubscription) push(items ...models.CatalogItem) {
	f.events <- adapter.SnapshotEvent{Snapshot: models.Snapshot{Items: items}}
}

func (f *fakeSubscription) fail(err error) {
	f.events <- adapter.SnapshotEvent{Err: err}
}

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (ClientSyncService, *errorState, *mock.MockCollectionAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockCollectionAdapter(ctrl)
	failure := newErrorState()
	svc := NewClientSyncService(mockAdapter, failure, logger.Nop())
	return svc, failure, mockAdapter
}

func waitForItems(t *testing.T, svc ClientSyncService, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(svc.Items()) == want
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSync_FirstSnapshotReplacesEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))
	assert.Empty(t, svc.Items())

	sub.push(
		models.CatalogItem{ID: "id-2", Name: "Bolt", Price: 1.2, Category: "Hardware"},
		models.CatalogItem{ID: "id-1", Name: "Widget", Price: 12.5, Category: "Tools"},
	)

	waitForItems(t, svc, 2)
	items := svc.Items()
	assert.Equal(t, "Bolt", items[0].Name)
	assert.Equal(t, "Widget", items[1].Name)
}

func TestSync_SnapshotReplacesWholeList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))

	sub.push(
		models.CatalogItem{ID: "id-1", Name: "Widget"},
		models.CatalogItem{ID: "id-2", Name: "Bolt"},
	)
	waitForItems(t, svc, 2)

	// следующий снапшот вытесняет предыдущий целиком, а не сливается с ним
	sub.push(models.CatalogItem{ID: "id-3", Name: "Nut"})
	waitForItems(t, svc, 1)
	assert.Equal(t, "id-3", svc.Items()[0].ID)
}

func TestSync_TransportErrorKeepsStaleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, failure, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))

	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget"})
	waitForItems(t, svc, 1)

	sub.fail(errors.New("connection reset"))
	close(sub.events)

	require.Eventually(t, func() bool {
		f := failure.Failure()
		return f != nil && f.Kind == models.FailureTransport
	}, 2*time.Second, 5*time.Millisecond)

	// данные остаются последними полученными
	require.Len(t, svc.Items(), 1)
	assert.Equal(t, "Widget", svc.Items()[0].Name)
}

func TestSync_SnapshotClearsFailureSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, failure, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	// удачный снапшот гасит любую ошибку, не только транспортную
	failure.set(&models.Failure{Kind: models.FailureValidation, Message: "name: required field is empty"})

	require.NoError(t, svc.Start(context.Background()))
	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget"})
	waitForItems(t, svc, 1)

	require.Eventually(t, func() bool {
		return failure.Failure() == nil
	}, 2*time.Second, 5*time.Millisecond)

	failure.set(&models.Failure{Kind: models.FailureTransport, Message: "lost"})
	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget"}, models.CatalogItem{ID: "id-2", Name: "Bolt"})
	waitForItems(t, svc, 2)

	require.Eventually(t, func() bool {
		return failure.Failure() == nil
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSync_SubscribeFailureRecordsTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, failure, mockAdapter := newTestSyncSvc(t, ctrl)
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(nil, errors.New("dial refused"))

	err := svc.Start(context.Background())

	require.Error(t, err)
	f := failure.Failure()
	require.NotNil(t, f)
	assert.Equal(t, models.FailureTransport, f.Kind)
	assert.Empty(t, svc.Items())
}

func TestSync_StopIgnoresLateEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))
	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget"})
	waitForItems(t, svc, 1)

	svc.Stop()
	assert.EqualValues(t, 1, sub.cancels.Load())

	// событие от отменённой подписки не меняет список
	sub.push(models.CatalogItem{ID: "id-9", Name: "Late"})
	close(sub.events)

	time.Sleep(50 * time.Millisecond)
	require.Len(t, svc.Items(), 1)
	assert.Equal(t, "id-1", svc.Items()[0].ID)
}

func TestSync_RestartDiscardsOldFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	first := newFakeSubscription()
	second := newFakeSubscription()
	gomock.InOrder(
		mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(first, nil),
		mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(second, nil),
	)

	require.NoError(t, svc.Start(context.Background()))
	require.NoError(t, svc.Start(context.Background()))

	assert.EqualValues(t, 1, first.cancels.Load())

	// кадры старой подписки отбрасываются, новой — применяются
	first.push(models.CatalogItem{ID: "stale", Name: "Stale"})
	close(first.events)
	second.push(models.CatalogItem{ID: "fresh", Name: "Fresh"})

	waitForItems(t, svc, 1)
	assert.Equal(t, "fresh", svc.Items()[0].ID)
}

func TestSync_ItemByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))
	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget", Price: 12.5, Category: "Tools"})
	waitForItems(t, svc, 1)

	item, ok := svc.ItemByID("id-1")
	require.True(t, ok)
	assert.Equal(t, "Widget", item.Name)

	_, ok = svc.ItemByID("missing")
	assert.False(t, ok)
}

func TestSync_ItemsReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSyncSvc(t, ctrl)
	sub := newFakeSubscription()
	mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	require.NoError(t, svc.Start(context.Background()))
	sub.push(models.CatalogItem{ID: "id-1", Name: "Widget"})
	waitForItems(t, svc, 1)

	got := svc.Items()
	got[0].Name = "Mutated"

	assert.Equal(t, "Widget", svc.Items()[0].Name)
}
