package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a single storage
// transaction that the operator commits on nil and rolls back on error.
// Implementations must use only writer; any other connection would wait on
// the open transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
