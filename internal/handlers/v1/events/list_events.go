package events

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/autovault/vault-server/internal/handlers/v1/apierror"
	"github.com/autovault/vault-server/internal/service"
)

// Event is the API response model for one emitted domain event.
type Event struct {
	ID        string      `json:"id" doc:"Event UUID"`
	Type      string      `json:"type" doc:"Event type, e.g. bucket.deposited"`
	Payload   interface{} `json:"payload" doc:"Type-specific payload"`
	CreatedAt string      `json:"createdAt" doc:"RFC3339 emission time"`
}

// NextCursor points at the next page of events.
type NextCursor struct {
	Position int `json:"position" doc:"Offset of the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListEventsInput is the Huma input for listing an account's events.
type ListEventsInput struct {
	Account  string `path:"account" minLength:"1" doc:"Account identifier"`
	Position int    `query:"position" minimum:"0" doc:"Offset from a previous response's nextCursor"`
	Limit    int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

// ListEventsResponseBody is the response body for listing an account's events.
type ListEventsResponseBody struct {
	Events     []Event     `json:"events" doc:"Page of events, newest first"`
	NextCursor *NextCursor `json:"nextCursor,omitempty" doc:"Absent on the last page"`
}

// ListEventsOutput is the Huma output for listing an account's events.
type ListEventsOutput struct {
	Body ListEventsResponseBody
}

type eventLister interface {
	ListEvents(ctx context.Context, account string, cursor *service.EventCursor) ([]service.Event, *service.EventCursor, error)
}

// ListEventsHandler handles GET /v1/accounts/{account}/events.
type ListEventsHandler struct {
	EventService eventLister
}

// NewListEventsHandler creates a new ListEventsHandler.
func NewListEventsHandler(svc eventLister) *ListEventsHandler {
	return &ListEventsHandler{EventService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListEventsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{account}/events",
		Summary:     "List events",
		Description: "Returns the account's event feed, newest first, with offset pagination.",
		Tags:        []string{"Events"},
	}, h.handle)
}

func (h *ListEventsHandler) handle(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	var cursor *service.EventCursor
	if input.Position > 0 || input.Limit > 0 {
		limit := input.Limit
		if limit == 0 {
			limit = 20
		}
		cursor = &service.EventCursor{Position: input.Position, Limit: limit}
	}

	evts, nextCursor, err := h.EventService.ListEvents(ctx, input.Account, cursor)
	if err != nil {
		return nil, apierror.New(err, "failed to list events")
	}

	resp := ListEventsResponseBody{Events: make([]Event, len(evts))}
	for i, evt := range evts {
		resp.Events[i] = Event{
			ID:        evt.ID.String(),
			Type:      evt.Type,
			Payload:   evt.Payload,
			CreatedAt: evt.CreatedAt.Format(time.RFC3339),
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &NextCursor{Position: nextCursor.Position, Limit: nextCursor.Limit}
	}

	return &ListEventsOutput{Body: resp}, nil
}
