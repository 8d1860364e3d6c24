package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted transaction date format.
const DateLayout = time.DateOnly

// Transaction represents a stored transaction joined with its category name.
type Transaction struct {
	ID           int64
	Date         string
	Merchant     string
	Amount       decimal.Decimal
	CategoryName string
}

// TransactionCreate is the input for creating one transaction.
type TransactionCreate struct {
	Date         string
	Merchant     string
	Amount       decimal.Decimal
	CategoryName string
}

// normalize trims text fields and reports the first problem as ErrValidation.
func (c *TransactionCreate) normalize() error {
	c.Date = strings.TrimSpace(c.Date)
	c.Merchant = strings.TrimSpace(c.Merchant)
	c.CategoryName = strings.TrimSpace(c.CategoryName)

	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, c.Date)
	}
	if c.Merchant == "" {
		return fmt.Errorf("%w: merchant is required", ErrValidation)
	}
	if c.CategoryName == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return nil
}
