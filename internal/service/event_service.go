package service

import (
	"context"

	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/storage/event"
)

const defaultLimit = 20

// EventService reads the per-account event feed.
type EventService struct {
	storage *storage.Storage
}

// NewEventService creates a new EventService.
func NewEventService(store *storage.Storage) *EventService {
	return &EventService{storage: store}
}

// ListEvents returns a page of the account's events, newest first, using
// cursor-based pagination.
func (s *EventService) ListEvents(ctx context.Context, account string, cursor *EventCursor) ([]Event, *EventCursor, error) {
	limit := defaultLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.storage.Events.ListByAccount(ctx, account, &event.Filter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *EventCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &EventCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Event, len(rows))
	for i, row := range rows {
		converted[i] = Event{
			ID:        row.ID,
			Account:   row.Account,
			Type:      row.Type,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		}
	}

	return converted, nextCursor, nil
}
