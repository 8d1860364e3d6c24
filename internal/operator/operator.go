package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Operator is the worker that processes items from the queue. Each item
// runs inside its own storage transaction.
type Operator struct {
	id      int
	storage *storage.Storage
	queue   chan ActionItem
	log     *logrus.Logger
}

func NewOperator(id int, s *storage.Storage, queue chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{
		id:      id,
		storage: s,
		queue:   queue,
		log:     log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.fail(item, "Operator.Write", err)
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(context.WithoutCancel(item.ctx)); rbErr != nil {
			o.log.WithError(rbErr).WithField("worker", o.id).Warn("Operator.Rollback")
		}
		o.fail(item, "Operator.Perform", err)
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		o.fail(item, "Operator.Commit", err)
		return
	}

	item.response <- ActionItemResponse{}
}

func (o *Operator) fail(item ActionItem, step string, err error) {
	entry := o.log.WithError(err).WithField("worker", o.id)
	entry.Error(step)
	if o.log.IsLevelEnabled(logrus.DebugLevel) {
		entry.Debug(spew.Sdump(item.action))
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
