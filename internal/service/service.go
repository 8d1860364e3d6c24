package service

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ErrValidation marks input the caller has to fix before retrying.
var ErrValidation = errors.New("validation failed")

// Processor runs a write action inside one storage transaction.
// *operator.OperatorDelegator satisfies it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service reading from store and writing through proc.
func NewService(store *storage.Storage, proc Processor) *Service {
	reader := store.Read()
	return &Service{
		Transaction: NewTransactionService(reader.Transactions, proc),
		Category:    NewCategoryService(reader.Categories, proc),
	}
}
