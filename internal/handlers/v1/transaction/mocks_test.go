package transaction

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockTransactionService is a mock for every transaction service interface.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) BulkCreateTransactions(ctx context.Context, creates []service.TransactionCreate) (int64, error) {
	args := m.Called(ctx, creates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) DeleteAllTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T) (humatest.TestAPI, *mockTransactionService) {
	t.Helper()
	svc := &mockTransactionService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewBulkCreateTransactionsHandler(svc).Register(api)
	NewDeleteTransactionsHandler(svc).Register(api)
	return api, svc
}

func assertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	var body SuccessBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
}
