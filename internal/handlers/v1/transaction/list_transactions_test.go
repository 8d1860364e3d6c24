package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

func TestListTransactions_Success(t *testing.T) {
	api, svc := newTestAPI(t)

	svc.On("ListTransactions", mock.Anything).Return([]service.Transaction{
		{ID: 1, Date: "2024-01-01", Merchant: "Coffee Shop", Amount: decimal.RequireFromString("4.50"), CategoryName: "Food"},
		{ID: 2, Date: "2024-01-03", Merchant: "Landlord", Amount: decimal.NewFromInt(1200), CategoryName: "Housing"},
	}, nil)

	resp := api.Get("/transactions")
	require.Equal(t, http.StatusOK, resp.Code)

	var body []Transaction
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, Transaction{
		ID: 1, Date: "2024-01-01", Merchant: "Coffee Shop", Description: "Coffee Shop", Amount: 4.5, CategoryName: "Food",
	}, body[0])
	assert.Equal(t, "Housing", body[1].CategoryName)
	assert.Equal(t, 1200.0, body[1].Amount)
}

func TestListTransactions_EmptyIsArray(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("ListTransactions", mock.Anything).Return([]service.Transaction{}, nil)

	resp := api.Get("/transactions")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestListTransactions_ServiceError(t *testing.T) {
	api, svc := newTestAPI(t)
	svc.On("ListTransactions", mock.Anything).Return(nil, errors.New("disk I/O error"))

	resp := api.Get("/transactions")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to list transactions")
}
