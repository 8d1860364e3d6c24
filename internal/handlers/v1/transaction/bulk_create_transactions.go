package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// BulkCreateTransactionsInput is the Huma input for a bulk create.
type BulkCreateTransactionsInput struct {
	Body []TransactionBody
}

// BulkCreateTransactionsOutput is the Huma output for a bulk create.
type BulkCreateTransactionsOutput struct {
	Body SuccessBody
}

type transactionBulkCreator interface {
	BulkCreateTransactions(ctx context.Context, creates []service.TransactionCreate) (int64, error)
}

// BulkCreateTransactionsHandler handles POST /transactions/bulk.
type BulkCreateTransactionsHandler struct {
	TransactionService transactionBulkCreator
}

// NewBulkCreateTransactionsHandler creates a new BulkCreateTransactionsHandler.
func NewBulkCreateTransactionsHandler(svc transactionBulkCreator) *BulkCreateTransactionsHandler {
	return &BulkCreateTransactionsHandler{TransactionService: svc}
}

// Register registers the bulk create endpoint with the Huma API.
func (h *BulkCreateTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "bulk-create-transactions",
		Method:        http.MethodPost,
		Path:          "/transactions/bulk",
		DefaultStatus: http.StatusCreated,
		Summary:       "Bulk create transactions",
		Description:   "Creates every transaction in the array, or none of them. An empty array succeeds without writing.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

func (h *BulkCreateTransactionsHandler) handle(ctx context.Context, input *BulkCreateTransactionsInput) (*BulkCreateTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	creates := make([]service.TransactionCreate, len(input.Body))
	for i, body := range input.Body {
		creates[i] = body.toCreate()
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("requestedCount", len(creates))
		stopTimer = logData.AddTiming("bulkInsertMs")
	}
	inserted, err := h.TransactionService.BulkCreateTransactions(ctx, creates)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, writeError("failed to bulk insert transactions", err)
	}

	if logData != nil {
		logData.AddData("insertedCount", inserted)
	}

	return &BulkCreateTransactionsOutput{Body: SuccessBody{Success: true}}, nil
}
