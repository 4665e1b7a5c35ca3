package db

import "context"

// Transactor allows you to run queries from repositories within a transaction.
// Repositories pick the transaction up from the context passed to fn.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
