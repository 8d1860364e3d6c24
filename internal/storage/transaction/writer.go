package transaction

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func insertQuery(creates []*TransactionCreate) bob.BaseQuery[*dialect.InsertQuery] {
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(TableName, "date", "merchant", "amount", "category_id"),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(sqlite.Arg(
			create.Date,
			create.Merchant,
			create.Amount,
			create.CategoryID,
		)))
	}
	return sqlite.Insert(queryMods...)
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	res, err := bob.Exec(ctx, w.tx, insertQuery([]*TransactionCreate{create}))
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted transaction id: %w", err)
	}
	return id, nil
}

// InsertMany writes creates with as few statements as the parameter limit
// allows and returns the number of rows written.
func (w *Writer) InsertMany(ctx context.Context, creates []*TransactionCreate) (int64, error) {
	var written int64
	for start := 0; start < len(creates); start += maxBatchRows {
		end := start + maxBatchRows
		if end > len(creates) {
			end = len(creates)
		}

		res, err := bob.Exec(ctx, w.tx, insertQuery(creates[start:end]))
		if err != nil {
			return written, fmt.Errorf("insert transactions %d-%d: %w", start, end-1, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return written, fmt.Errorf("read inserted row count: %w", err)
		}
		written += n
	}
	return written, nil
}

// DeleteAll removes every transaction and returns how many were removed.
func (w *Writer) DeleteAll(ctx context.Context) (int64, error) {
	res, err := bob.Exec(ctx, w.tx, sqlite.Delete(dm.From(TableName)))
	if err != nil {
		return 0, fmt.Errorf("delete transactions: %w", err)
	}
	return res.RowsAffected()
}
