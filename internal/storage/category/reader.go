package category

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every category in id order.
func (r *Reader) List(ctx context.Context) ([]Category, error) {
	q := sqlite.Select(
		sm.Columns("id", "name"),
		sm.From(TableName),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// FindByNames returns the categories whose name is in names. Names with no
// row are simply absent from the result.
func (r *Reader) FindByNames(ctx context.Context, names []string) ([]Category, error) {
	var result []Category
	for _, batch := range chunk(names) {
		args := make([]bob.Expression, len(batch))
		for i, name := range batch {
			args[i] = sqlite.Arg(name)
		}

		queryMods := []bob.Mod[*dialect.SelectQuery]{
			sm.Columns("id", "name"),
			sm.From(TableName),
			sm.Where(sqlite.Quote("name").In(args...)),
			sm.OrderBy("id").Asc(),
		}
		rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[Category]())
		if err != nil {
			return nil, fmt.Errorf("find categories by name: %w", err)
		}
		result = append(result, rows...)
	}
	return result, nil
}
