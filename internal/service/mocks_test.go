package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) ListJoined(ctx context.Context) ([]transaction.JoinedTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transaction.JoinedTransaction), args.Error(1)
}

type mockCategoryReader struct {
	mock.Mock
}

func (m *mockCategoryReader) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}
