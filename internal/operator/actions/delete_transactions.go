package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteAllTransactions empties the transactions table. Categories stay.
type DeleteAllTransactions struct {
	Deleted int64
}

func (d *DeleteAllTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transaction.DeleteAll(ctx)
	if err != nil {
		return err
	}
	d.Deleted = deleted
	return nil
}
