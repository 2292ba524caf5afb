package operator

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
)

// IProcessor submits an action and waits for its outcome.
type IProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// OperatorDelegator owns one queue per worker and routes each action to
// the queue its account hashes to. Actions on the same account are
// processed in submission order by a single worker; actions on different
// accounts run in parallel.
type OperatorDelegator struct {
	storage    *storage.Storage
	publisher  events.Publisher
	queues     []chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(s *storage.Storage, publisher events.Publisher, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, 1000)
	}
	return &OperatorDelegator{
		storage:    s,
		publisher:  publisher,
		queues:     queues,
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.publisher, d.queues[i])
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		for _, queue := range d.queues {
			close(queue)
		}
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queues[d.shard(action.AccountKey())] <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) shard(accountKey string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accountKey))
	return int(h.Sum32() % uint32(d.numWorkers))
}
