package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type transactionReader interface {
	ListJoined(ctx context.Context) ([]transaction.JoinedTransaction, error)
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader    transactionReader
	processor Processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader transactionReader, proc Processor) *TransactionService {
	return &TransactionService{reader: reader, processor: proc}
}

// ListTransactions returns every transaction with its category name, oldest first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.reader.ListJoined(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = fromJoined(&row)
	}
	return transactions, nil
}

// CreateTransaction stores one transaction, creating its category when
// needed, and returns the stored row.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if err := create.normalize(); err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Date:         create.Date,
		Merchant:     create.Merchant,
		Amount:       create.Amount,
		CategoryName: create.CategoryName,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := fromJoined(action.Created)
	return &created, nil
}

// BulkCreateTransactions stores all of creates or none of them and returns
// how many rows were written. An empty slice is a successful no-op.
func (s *TransactionService) BulkCreateTransactions(ctx context.Context, creates []TransactionCreate) (int64, error) {
	if len(creates) == 0 {
		return 0, nil
	}

	items := make([]actions.BulkTransaction, len(creates))
	for i := range creates {
		create := creates[i]
		if err := create.normalize(); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = actions.BulkTransaction{
			Date:         create.Date,
			Merchant:     create.Merchant,
			Amount:       create.Amount,
			CategoryName: create.CategoryName,
		}
	}

	action := &actions.BulkCreateTransactions{Items: items}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Inserted, nil
}

// DeleteAllTransactions removes every transaction and keeps the categories.
func (s *TransactionService) DeleteAllTransactions(ctx context.Context) (int64, error) {
	action := &actions.DeleteAllTransactions{}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}

func fromJoined(row *transaction.JoinedTransaction) Transaction {
	return Transaction{
		ID:           row.ID,
		Date:         row.Date,
		Merchant:     row.Merchant,
		Amount:       row.Amount,
		CategoryName: row.CategoryName,
	}
}
