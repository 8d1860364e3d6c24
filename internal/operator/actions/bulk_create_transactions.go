package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type BulkTransaction struct {
	Date         string
	Merchant     string
	Amount       decimal.Decimal
	CategoryName string
}

// BulkCreateTransactions writes every item or none of them. Categories
// that do not exist yet are created in the same transaction.
type BulkCreateTransactions struct {
	Items []BulkTransaction

	Inserted int64
}

func (b *BulkCreateTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(b.Items) == 0 {
		return nil
	}

	names := make([]string, len(b.Items))
	for i, item := range b.Items {
		names[i] = item.CategoryName
	}

	ids, err := ResolveCategories(ctx, writer, DistinctNames(names))
	if err != nil {
		return err
	}

	creates := make([]*transaction.TransactionCreate, len(b.Items))
	for i, item := range b.Items {
		categoryID, ok := ids[item.CategoryName]
		if !ok {
			return fmt.Errorf("%w: %q", ErrCategoryNotResolved, item.CategoryName)
		}
		creates[i] = &transaction.TransactionCreate{
			Date:       item.Date,
			Merchant:   item.Merchant,
			Amount:     item.Amount,
			CategoryID: categoryID,
		}
	}

	inserted, err := writer.Transaction.InsertMany(ctx, creates)
	if err != nil {
		return err
	}
	b.Inserted = inserted
	return nil
}
