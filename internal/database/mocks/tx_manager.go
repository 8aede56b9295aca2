// Package mocks provides mock implementations of database interfaces for testing.
package mocks

import (
	"context"
)

// MockTxManager is a TxManager that runs the function without a real
// transaction, passing the context straight through.
type MockTxManager struct {
	// Err, when set, is returned instead of running the function.
	Err error
}

// WithTx runs fn with the unmodified context, or returns Err when configured.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}
