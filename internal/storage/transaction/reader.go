package transaction

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func joinedQuery(extra ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			sqlite.Quote("t", "id"),
			sqlite.Quote("t", "date"),
			sqlite.Quote("t", "merchant"),
			sqlite.Quote("t", "amount"),
			sqlite.Quote("c", "name").As("category_name"),
		),
		sm.From(sqlite.Quote(TableName)).As("t"),
		sm.InnerJoin(sqlite.Quote(category.TableName)).As("c").On(
			sqlite.Quote("t", "category_id").EQ(sqlite.Quote("c", "id")),
		),
	}
	queryMods = append(queryMods, extra...)
	queryMods = append(queryMods, sm.OrderBy(sqlite.Quote("t", "id")).Asc())

	return sqlite.Select(queryMods...)
}

// ListJoined returns every transaction with its category name, in
// insertion order.
func (r *Reader) ListJoined(ctx context.Context) ([]JoinedTransaction, error) {
	rows, err := bob.All(ctx, r.exec, joinedQuery(), scan.StructMapper[JoinedTransaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}

// FindJoinedByID returns sql.ErrNoRows (wrapped) when id does not exist.
func (r *Reader) FindJoinedByID(ctx context.Context, id int64) (*JoinedTransaction, error) {
	q := joinedQuery(sm.Where(sqlite.Quote("t", "id").EQ(sqlite.Arg(id))))

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[JoinedTransaction]())
	if err != nil {
		return nil, fmt.Errorf("find transaction %d: %w", id, err)
	}
	return &row, nil
}
