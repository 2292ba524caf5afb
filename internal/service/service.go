package service

import (
	"github.com/autovault/vault-server/internal/exchange"
	"github.com/autovault/vault-server/internal/operator"
	"github.com/autovault/vault-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Bucket *BucketService
	Goal   *GoalService
	DCA    *DCAService
	Event  *EventService
}

// NewService creates a new Service. All mutations are routed through the
// processor; reads go straight to storage.
func NewService(store *storage.Storage, processor operator.IProcessor, exch exchange.Exchange, owner string) *Service {
	return &Service{
		Bucket: NewBucketService(store, processor),
		Goal:   NewGoalService(store, processor),
		DCA:    NewDCAService(store, processor, exch, owner),
		Event:  NewEventService(store),
	}
}
