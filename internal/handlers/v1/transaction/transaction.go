package transaction

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// Description repeats Merchant for clients that read that name.
type Transaction struct {
	ID           int64   `json:"id" doc:"Generated transaction id"`
	Date         string  `json:"date" format:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Merchant     string  `json:"merchant" doc:"Merchant or payee"`
	Description  string  `json:"description" doc:"Same as merchant"`
	Amount       float64 `json:"amount" doc:"Transaction amount"`
	CategoryName string  `json:"category_name" doc:"Name of the transaction category"`
}

// TransactionBody is one transaction in a create or bulk create request.
type TransactionBody struct {
	Date        string  `json:"date" format:"date" doc:"Transaction date (YYYY-MM-DD)"`
	Merchant    string  `json:"merchant,omitempty" doc:"Merchant or payee"`
	Description string  `json:"description,omitempty" doc:"Alias for merchant, used when merchant is empty"`
	Amount      float64 `json:"amount" doc:"Transaction amount"`
	Category    string  `json:"category" minLength:"1" doc:"Category name, created when it does not exist"`
}

// SuccessBody is returned by endpoints that have nothing else to report.
type SuccessBody struct {
	Success bool `json:"success" doc:"Always true on success"`
}

func (b TransactionBody) toCreate() service.TransactionCreate {
	merchant := b.Merchant
	if merchant == "" {
		merchant = b.Description
	}
	return service.TransactionCreate{
		Date:         b.Date,
		Merchant:     merchant,
		Amount:       decimal.NewFromFloat(b.Amount),
		CategoryName: b.Category,
	}
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		Date:         tx.Date,
		Merchant:     tx.Merchant,
		Description:  tx.Merchant,
		Amount:       tx.Amount.InexactFloat64(),
		CategoryName: tx.CategoryName,
	}
}

// writeError maps service errors onto HTTP errors.
func writeError(msg string, err error) error {
	if errors.Is(err, service.ErrValidation) {
		return huma.NewError(http.StatusBadRequest, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}
