package sdk

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid transfer amount")
)

// Transfer moves Amount wei from one account to another.
type Transfer struct {
	From   Address
	To     Address
	Amount *big.Int
}

// Ledger is the value-transfer primitive the contract settles payments against.
// Settle applies a batch of transfers all-or-nothing: when it returns an error no
// balance has changed.
type Ledger interface {
	BalanceOf(addr Address) *big.Int
	Settle(ctx context.Context, transfers []Transfer) error
}

// ReceiveHook runs for every credited leg of a batch before balances move. It
// models code controlled by the receiving account; returning an error rejects
// the whole batch. Contract calls issued from a hook fail with a reentrancy error.
type ReceiveHook func(ctx context.Context, t Transfer) error

// MemLedger is an in-memory Ledger with a genesis allocation.
type MemLedger struct {
	mu       sync.Mutex
	balances map[Address]*big.Int
	hook     ReceiveHook
}

// NewMemLedger creates a ledger seeded with alloc (copied).
func NewMemLedger(alloc map[Address]*big.Int) *MemLedger {
	l := &MemLedger{balances: make(map[Address]*big.Int, len(alloc))}
	for addr, amount := range alloc {
		l.balances[addr] = CopyWei(amount)
	}
	return l
}

// BalanceOf returns a copy of the balance of addr.
func (l *MemLedger) BalanceOf(addr Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return CopyWei(l.balances[addr])
}

// Deposit credits addr out of thin air, genesis style.
func (l *MemLedger) Deposit(addr Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := CopyWei(l.balances[addr])
	l.balances[addr] = bal.Add(bal, amount)
}

// OnReceive installs (or with nil removes) the receive hook.
func (l *MemLedger) OnReceive(hook ReceiveHook) {
	l.mu.Lock()
	l.hook = hook
	l.mu.Unlock()
}

// Settle validates and applies transfers in order against a scratch copy of the
// touched balances, swapping them in only when every leg succeeded.
func (l *MemLedger) Settle(ctx context.Context, transfers []Transfer) error {
	for _, t := range transfers {
		if t.Amount == nil || t.Amount.Sign() < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, t.Amount)
		}
	}

	l.mu.Lock()
	hook := l.hook
	l.mu.Unlock()
	if hook != nil {
		for _, t := range transfers {
			if err := hook(ctx, t); err != nil {
				return fmt.Errorf("transfer to %s rejected: %w", t.To.Hex(), err)
			}
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	scratch := make(map[Address]*big.Int)
	balance := func(a Address) *big.Int {
		if v, ok := scratch[a]; ok {
			return v
		}
		v := CopyWei(l.balances[a])
		scratch[a] = v
		return v
	}
	for _, t := range transfers {
		from := balance(t.From)
		if from.Cmp(t.Amount) < 0 {
			return fmt.Errorf("%w: %s holds %s, needs %s", ErrInsufficientBalance, t.From.Hex(), from, t.Amount)
		}
		from.Sub(from, t.Amount)
		to := balance(t.To)
		to.Add(to, t.Amount)
	}
	for addr, v := range scratch {
		l.balances[addr] = v
	}
	return nil
}
