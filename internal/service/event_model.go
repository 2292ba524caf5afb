package service

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Event is one emitted domain event as stored.
type Event struct {
	ID        uuid.UUID
	Account   string
	Type      string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// EventCursor identifies a position in a paginated event listing.
type EventCursor struct {
	Position int
	Limit    int
}
