package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/storage/event"
)

func newTestEventService(t *testing.T) (*EventService, *mockEventTable) {
	t.Helper()
	table := &mockEventTable{}
	store := &storage.Storage{Events: table}
	return NewEventService(store), table
}

func makeEventRows(n int, createdAt time.Time) []event.Record {
	rows := make([]event.Record, n)
	for i := range rows {
		rows[i] = event.Record{
			ID:        uuid.Must(uuid.NewV4()),
			Account:   "user1",
			Type:      "bucket.deposited",
			Payload:   json.RawMessage(`{"amount":1000}`),
			CreatedAt: createdAt,
		}
	}
	return rows
}

func TestListEvents_NoResults(t *testing.T) {
	svc, table := newTestEventService(t)

	table.On("ListByAccount", mock.Anything, "user1", mock.Anything).
		Return([]event.Record{}, nil)

	evts, nextCursor, err := svc.ListEvents(context.Background(), "user1", nil)

	assert.NoError(t, err)
	assert.Nil(t, evts)
	assert.Nil(t, nextCursor)
}

func TestListEvents_SinglePage(t *testing.T) {
	svc, table := newTestEventService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeEventRows(2, now)

	table.On("ListByAccount", mock.Anything, "user1", mock.MatchedBy(func(f *event.Filter) bool {
		return f.Limit == defaultLimit && f.Offset == 0
	})).Return(rows, nil)

	evts, nextCursor, err := svc.ListEvents(context.Background(), "user1", nil)

	assert.NoError(t, err)
	assert.Len(t, evts, 2)
	assert.Nil(t, nextCursor)

	assert.Equal(t, rows[0].ID, evts[0].ID)
	assert.Equal(t, "bucket.deposited", evts[0].Type)
	assert.JSONEq(t, `{"amount":1000}`, string(evts[0].Payload))
}

func TestListEvents_HasNextPage(t *testing.T) {
	svc, table := newTestEventService(t)

	rows := makeEventRows(defaultLimit+1, time.Now())

	table.On("ListByAccount", mock.Anything, "user1", mock.Anything).Return(rows, nil)

	evts, nextCursor, err := svc.ListEvents(context.Background(), "user1", nil)

	assert.NoError(t, err)
	assert.Len(t, evts, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
}

func TestListEvents_WithCursor(t *testing.T) {
	svc, table := newTestEventService(t)

	rows := makeEventRows(3, time.Now()) // limit=2, returns 3 → has next page

	table.On("ListByAccount", mock.Anything, "user1", mock.MatchedBy(func(f *event.Filter) bool {
		return f.Limit == 2 && f.Offset == 20
	})).Return(rows, nil)

	evts, nextCursor, err := svc.ListEvents(context.Background(), "user1", &EventCursor{
		Position: 20,
		Limit:    2,
	})

	assert.NoError(t, err)
	assert.Len(t, evts, 2)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
}

func TestListEvents_StorageError(t *testing.T) {
	svc, table := newTestEventService(t)

	table.On("ListByAccount", mock.Anything, "user1", mock.Anything).
		Return(nil, errors.New("database unavailable"))

	evts, nextCursor, err := svc.ListEvents(context.Background(), "user1", nil)

	assert.Error(t, err)
	assert.Nil(t, evts)
	assert.Nil(t, nextCursor)
}
