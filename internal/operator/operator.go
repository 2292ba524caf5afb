package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
)

// Operator is the worker that processes items from its queue. Every
// account hashes to exactly one queue, so two mutations on the same
// account never run concurrently.
type Operator struct {
	storage   *storage.Storage
	publisher events.Publisher
	queue     chan ActionItem
}

func NewOperator(s *storage.Storage, publisher events.Publisher, queue chan ActionItem) *Operator {
	return &Operator{
		storage:   s,
		publisher: publisher,
		queue:     queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	emitted, err := item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback(item.ctx)
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Events are already durable as rows in the committed transaction;
	// broker delivery is best effort.
	for _, evt := range emitted {
		if err := o.publisher.Publish(item.ctx, evt); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account":    evt.Account,
				"event_type": evt.Type,
			}).Warn("failed to publish event")
		}
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
