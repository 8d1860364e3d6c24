package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

var ErrCategoryNotResolved = errors.New("category could not be resolved")

// ResolveCategories makes sure every name has a category row and returns
// name to id. names must already be distinct.
func ResolveCategories(ctx context.Context, writer *storage.Writer, names []string) (map[string]int64, error) {
	if len(names) == 0 {
		return map[string]int64{}, nil
	}

	if err := writer.Category.InsertIfAbsent(ctx, names); err != nil {
		return nil, err
	}

	rows, err := writer.Category.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		ids[row.Name] = row.ID
	}
	for _, name := range names {
		if _, ok := ids[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrCategoryNotResolved, name)
		}
	}
	return ids, nil
}

// DistinctNames returns names with duplicates removed, first occurrence wins.
func DistinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}
	return distinct
}
