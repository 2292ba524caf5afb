package actions

import (
	"context"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/storage"
)

// IAction is one mutating vault operation. Perform runs inside a single
// transaction scoped to the writer and returns the domain events to emit
// if the transaction commits. Any error rolls everything back; no partial
// effects survive.
type IAction interface {
	// AccountKey routes the action to the worker that owns its account,
	// serializing all mutations on one account.
	AccountKey() string
	Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error)
}
