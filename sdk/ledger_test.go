package sdk

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = MustParseAddress("0x0000000000000000000000000000000000000a11")
	bob   = MustParseAddress("0x0000000000000000000000000000000000000b0b")
	carol = MustParseAddress("0x0000000000000000000000000000000000000ca7")
)

func TestSettleAppliesLegsInOrder(t *testing.T) {
	l := NewMemLedger(map[Address]*big.Int{alice: Ether(2)})

	// bob only holds value once alice's leg credited him
	err := l.Settle(context.Background(), []Transfer{
		{From: alice, To: bob, Amount: Ether(2)},
		{From: bob, To: carol, Amount: Ether(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "0", l.BalanceOf(alice).String())
	assert.Equal(t, Ether(1).String(), l.BalanceOf(bob).String())
	assert.Equal(t, Ether(1).String(), l.BalanceOf(carol).String())
}

func TestSettleIsAllOrNothing(t *testing.T) {
	l := NewMemLedger(map[Address]*big.Int{alice: Ether(1)})

	err := l.Settle(context.Background(), []Transfer{
		{From: alice, To: bob, Amount: Ether(1)},
		{From: carol, To: bob, Amount: big.NewInt(1)},
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, Ether(1).String(), l.BalanceOf(alice).String())
	assert.Equal(t, "0", l.BalanceOf(bob).String())
}

func TestSettleRejectsInvalidAmounts(t *testing.T) {
	l := NewMemLedger(map[Address]*big.Int{alice: Ether(1)})
	assert.ErrorIs(t, l.Settle(context.Background(), []Transfer{{From: alice, To: bob, Amount: big.NewInt(-1)}}), ErrInvalidAmount)
	assert.ErrorIs(t, l.Settle(context.Background(), []Transfer{{From: alice, To: bob}}), ErrInvalidAmount)
}

func TestReceiveHookCanReject(t *testing.T) {
	l := NewMemLedger(map[Address]*big.Int{alice: Ether(1)})
	refuse := errors.New("not accepting")
	var seen []Transfer
	l.OnReceive(func(ctx context.Context, tr Transfer) error {
		seen = append(seen, tr)
		if tr.To == carol {
			return refuse
		}
		return nil
	})

	err := l.Settle(context.Background(), []Transfer{
		{From: alice, To: bob, Amount: big.NewInt(5)},
		{From: alice, To: carol, Amount: big.NewInt(5)},
	})
	assert.ErrorIs(t, err, refuse)
	assert.Len(t, seen, 2)
	assert.Equal(t, Ether(1).String(), l.BalanceOf(alice).String())

	l.OnReceive(nil)
	require.NoError(t, l.Settle(context.Background(), []Transfer{{From: alice, To: carol, Amount: big.NewInt(5)}}))
	assert.Equal(t, "5", l.BalanceOf(carol).String())
}

func TestBalanceOfReturnsCopy(t *testing.T) {
	l := NewMemLedger(nil)
	l.Deposit(alice, big.NewInt(10))
	b := l.BalanceOf(alice)
	b.SetInt64(999)
	assert.Equal(t, "10", l.BalanceOf(alice).String())
}
