package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SeedCategories inserts the configured default categories. Safe to run on
// every startup.
type SeedCategories struct {
	Names []string
}

func (s *SeedCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Category.InsertIfAbsent(ctx, DistinctNames(s.Names))
}
