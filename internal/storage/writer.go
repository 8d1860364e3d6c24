package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Writer groups the table writers of one open transaction.
type Writer struct {
	tx          bob.Tx
	Category    *category.Writer
	Transaction *transaction.Writer
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Category:    category.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
