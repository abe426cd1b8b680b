package contract

import (
	"math/big"

	"nfc_contract/sdk"
)

// -----------------------------------------------------------------------------
// Payment Splitter
// -----------------------------------------------------------------------------

var bpsBase = big.NewInt(BpsBase)

// ComputeShares splits price into the platform fee, floor(price*feeInBp/10000),
// and the author share, which gets the rounding remainder.
// Example payload: ComputeShares(sdk.Ether(1), 500) -> 0.05 ether, 0.95 ether
func ComputeShares(price *big.Int, feeInBp uint64) (fee, author *big.Int) {
	fee = new(big.Int).Mul(price, new(big.Int).SetUint64(feeInBp))
	fee.Quo(fee, bpsBase)
	author = new(big.Int).Sub(price, fee)
	return fee, author
}

// quote builds the user facing split of one mint.
func quote(price *big.Int, feeInBp uint64) *Quote {
	fee, author := ComputeShares(price, feeInBp)
	return &Quote{Price: sdk.CopyWei(price), Fee: fee, AuthorShare: author}
}

// settle moves the payment of one mint as a single ledger batch: the payer's
// full value goes to escrow, then escrow pays the treasury, the author and the
// refund. Empty legs are left out. While the ledger runs, every contract entry
// point fails with ErrReentrantCall instead of waiting on the held lock.
func (c *Contract) settle(t *txn, cfg *GlobalConfig, payer, author sdk.Address, price, sent *big.Int) error {
	if sent.Cmp(price) < 0 {
		return revert(ErrInsufficientPayment, "sent %s wei, price %s wei", sent, price)
	}
	fee, share := ComputeShares(price, cfg.FeeInBp)
	refund := new(big.Int).Sub(sent, price)

	legs := make([]sdk.Transfer, 0, 4)
	add := func(from, to sdk.Address, amount *big.Int) {
		if amount.Sign() > 0 {
			legs = append(legs, sdk.Transfer{From: from, To: to, Amount: amount})
		}
	}
	add(payer, cfg.Escrow, sent)
	add(cfg.Escrow, cfg.Treasury, fee)
	add(cfg.Escrow, author, share)
	add(cfg.Escrow, payer, refund)

	c.settling.Store(true)
	defer c.settling.Store(false)
	if err := c.ledger.Settle(withSettlement(t.ctx), legs); err != nil {
		return wrapCause(ErrTransferFailed, err)
	}
	t.settled = &settlement{fee: fee, author: share, refund: refund}
	return nil
}
