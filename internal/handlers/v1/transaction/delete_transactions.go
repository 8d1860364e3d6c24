package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// DeleteTransactionsOutput is the Huma output for deleting all transactions.
type DeleteTransactionsOutput struct {
	Body SuccessBody
}

type transactionDeleter interface {
	DeleteAllTransactions(ctx context.Context) (int64, error)
}

// DeleteTransactionsHandler handles DELETE /transactions.
type DeleteTransactionsHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionsHandler creates a new DeleteTransactionsHandler.
func NewDeleteTransactionsHandler(svc transactionDeleter) *DeleteTransactionsHandler {
	return &DeleteTransactionsHandler{TransactionService: svc}
}

// Register registers the delete transactions endpoint with the Huma API.
func (h *DeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transactions",
		Method:      http.MethodDelete,
		Path:        "/transactions",
		Summary:     "Delete all transactions",
		Description: "Removes every transaction. Categories are kept.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*DeleteTransactionsOutput, error) {
	deleted, err := h.TransactionService.DeleteAllTransactions(ctx)
	if err != nil {
		return nil, writeError("failed to delete transactions", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", deleted)
	}

	return &DeleteTransactionsOutput{Body: SuccessBody{Success: true}}, nil
}
