package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/storagetest"
)

type row struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Merchant     string  `json:"merchant"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	CategoryName string  `json:"category_name"`
}

type categoryRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestServer(t *testing.T, staticDir string) http.Handler {
	t.Helper()
	store := storagetest.New(t)

	logger := logrus.New()
	logger.Out = io.Discard

	env := &config.Config{OperatorWorkers: 1, OperatorQueueSize: 10}
	delegator := operator.NewOperatorDelegator(store, env, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	svc := service.NewService(store, delegator)
	require.NoError(t, svc.Category.SeedCategories(context.Background(), config.DefaultCategories))

	rest := &Rest{Logger: logger, StaticDir: staticDir, Service: svc, Storage: store}
	return rest.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCategories_SeededDefaults(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	categories := decode[[]categoryRow](t, w)
	require.Len(t, categories, len(config.DefaultCategories))
	for i, name := range config.DefaultCategories {
		assert.Equal(t, name, categories[i].Name)
	}
}

func TestCreateTransaction_UsesSeededCategory(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodPost, "/transactions", map[string]any{
		"date": "2024-01-01", "merchant": "Coffee Shop", "amount": 4.5, "category": "Food",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(logging.RequestIDHeader))

	created := decode[row](t, w)
	assert.Equal(t, "Food", created.CategoryName)
	assert.Equal(t, "Coffee Shop", created.Merchant)
	assert.Equal(t, 4.5, created.Amount)

	categories := decode[[]categoryRow](t, do(t, h, http.MethodGet, "/categories", nil))
	assert.Len(t, categories, len(config.DefaultCategories))

	listed := decode[[]row](t, do(t, h, http.MethodGet, "/transactions", nil))
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])
}

func TestBulkCreate_DeduplicatesCategories(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodPost, "/transactions/bulk", []map[string]any{
		{"date": "2024-02-01", "merchant": "Landlord", "amount": 1200, "category": "Rent"},
		{"date": "2024-02-01", "description": "Garage", "amount": 80, "category": "Rent"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	categories := decode[[]categoryRow](t, do(t, h, http.MethodGet, "/categories", nil))
	rent := 0
	for _, c := range categories {
		if c.Name == "Rent" {
			rent++
		}
	}
	assert.Equal(t, 1, rent)

	listed := decode[[]row](t, do(t, h, http.MethodGet, "/transactions", nil))
	require.Len(t, listed, 2)
	assert.Equal(t, "Landlord", listed[0].Merchant)
	assert.Equal(t, "Garage", listed[1].Description)
	assert.Equal(t, "Rent", listed[1].CategoryName)
}

func TestBulkCreate_EmptyArray(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodPost, "/transactions/bulk", []map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, decode[struct {
		Success bool `json:"success"`
	}](t, w).Success)

	listed := decode[[]row](t, do(t, h, http.MethodGet, "/transactions", nil))
	assert.Empty(t, listed)
}

func TestBulkCreate_InvalidItemWritesNothing(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodPost, "/transactions/bulk", []map[string]any{
		{"date": "2024-02-01", "merchant": "Landlord", "amount": 1200, "category": "Rent"},
		{"date": "2024-02-01", "merchant": " ", "amount": 80, "category": "Parking"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	listed := decode[[]row](t, do(t, h, http.MethodGet, "/transactions", nil))
	assert.Empty(t, listed)
	categories := decode[[]categoryRow](t, do(t, h, http.MethodGet, "/categories", nil))
	assert.Len(t, categories, len(config.DefaultCategories))
}

func TestDeleteTransactions_KeepsCategories(t *testing.T) {
	h := newTestServer(t, "")

	do(t, h, http.MethodPost, "/transactions", map[string]any{
		"date": "2024-01-01", "merchant": "Airline", "amount": 300, "category": "Travel",
	})

	w := do(t, h, http.MethodDelete, "/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	listed := decode[[]row](t, do(t, h, http.MethodGet, "/transactions", nil))
	assert.Empty(t, listed)

	categories := decode[[]categoryRow](t, do(t, h, http.MethodGet, "/categories", nil))
	assert.Len(t, categories, len(config.DefaultCategories)+1)
}

func TestStatus(t *testing.T) {
	h := newTestServer(t, "")

	w := do(t, h, http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>finance</h1>"), 0o600))
	h := newTestServer(t, dir)

	w := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>finance</h1>")
}
