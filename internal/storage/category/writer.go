package category

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
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

// InsertIfAbsent creates a row for every name that does not exist yet.
// Existing names are left untouched and never produce an error.
func (w *Writer) InsertIfAbsent(ctx context.Context, names []string) error {
	for _, batch := range chunk(names) {
		queryMods := []bob.Mod[*dialect.InsertQuery]{
			im.OrIgnore(),
			im.Into(TableName, "name"),
		}
		for _, name := range batch {
			queryMods = append(queryMods, im.Values(sqlite.Arg(name)))
		}

		if _, err := bob.Exec(ctx, w.tx, sqlite.Insert(queryMods...)); err != nil {
			return fmt.Errorf("insert categories: %w", err)
		}
	}
	return nil
}
