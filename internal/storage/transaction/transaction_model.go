package transaction

import (
	"github.com/shopspring/decimal"
)

// TableName is the SQL table holding transactions.
const TableName = "transactions"

// maxBatchRows keeps a multi-row insert well below SQLite's bound
// parameter limit (four parameters per row).
const maxBatchRows = 500

// Transaction represents a transaction record.
type Transaction struct {
	ID         int64           `db:"id"`
	Date       string          `db:"date"`
	Merchant   string          `db:"merchant"`
	Amount     decimal.Decimal `db:"amount"`
	CategoryID int64           `db:"category_id"`
}

// JoinedTransaction is a transaction with its category id replaced by the
// category name.
type JoinedTransaction struct {
	ID           int64           `db:"id"`
	Date         string          `db:"date"`
	Merchant     string          `db:"merchant"`
	Amount       decimal.Decimal `db:"amount"`
	CategoryName string          `db:"category_name"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Date       string
	Merchant   string
	Amount     decimal.Decimal
	CategoryID int64
}
