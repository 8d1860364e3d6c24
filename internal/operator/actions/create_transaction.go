package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransaction resolves the category by name, inserts the row and
// reads it back joined with its category. Created is set once Perform
// succeeds.
type CreateTransaction struct {
	Date         string
	Merchant     string
	Amount       decimal.Decimal
	CategoryName string

	Created *transaction.JoinedTransaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	ids, err := ResolveCategories(ctx, writer, []string{t.CategoryName})
	if err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		Date:       t.Date,
		Merchant:   t.Merchant,
		Amount:     t.Amount,
		CategoryID: ids[t.CategoryName],
	})
	if err != nil {
		return err
	}

	created, err := writer.Transaction.FindJoinedByID(ctx, id)
	if err != nil {
		return err
	}
	t.Created = created
	return nil
}
