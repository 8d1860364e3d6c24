package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

type categoryReader interface {
	List(ctx context.Context) ([]category.Category, error)
}

// CategoryService handles category business logic.
type CategoryService struct {
	reader    categoryReader
	processor Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader categoryReader, proc Processor) *CategoryService {
	return &CategoryService{reader: reader, processor: proc}
}

// ListCategories returns every category in id order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: row.ID, Name: row.Name}
	}
	return categories, nil
}

// SeedCategories creates any of names that are missing. Blank names are skipped.
func (s *CategoryService) SeedCategories(ctx context.Context, names []string) error {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	if err := s.processor.Process(ctx, &actions.SeedCategories{Names: cleaned}); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
