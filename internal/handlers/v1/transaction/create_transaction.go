package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Creates a transaction, creating its category if needed, and returns the stored row.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	created, err := h.TransactionService.CreateTransaction(ctx, input.Body.toCreate())
	if err != nil {
		return nil, writeError("failed to create transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", created.ID)
	}

	return &CreateTransactionOutput{Body: fromService(*created)}, nil
}
