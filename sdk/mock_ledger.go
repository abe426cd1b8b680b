package sdk

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockLedger is a testify mock of Ledger for exercising settlement failures.
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) BalanceOf(addr Address) *big.Int {
	args := m.Called(addr)
	if v, ok := args.Get(0).(*big.Int); ok {
		return v
	}
	return new(big.Int)
}

func (m *MockLedger) Settle(ctx context.Context, transfers []Transfer) error {
	args := m.Called(ctx, transfers)
	return args.Error(0)
}
