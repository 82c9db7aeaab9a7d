package repositories

import "context"

// TxFn is a function that runs within a transaction. The transaction
// handle is passed explicitly; it must be used for every statement
// that has to commit or roll back together.
type TxFn func(ctx context.Context, tx DBTX) error

// TransactionManager handles database transactions. The HTTP layer
// opens one transaction per mutating request and hands it to the
// service; services never begin or commit on their own.
type TransactionManager interface {
	// ExecTx executes a function within a transaction. The transaction
	// is rolled back if fn returns an error, committed otherwise.
	ExecTx(ctx context.Context, fn TxFn) error
}
