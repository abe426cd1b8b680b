package sdk

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Env is the execution environment of one contract call: who sent it and what
// value is attached. It is passed explicitly to every mutating operation.
type Env struct {
	TxID      string
	Sender    Address
	Value     *big.Int
	Timestamp time.Time
}

// NewEnv builds an env for sender with value attached, stamping a fresh tx id.
// Example payload: sdk.NewEnv(payer, sdk.Ether(1))
func NewEnv(sender Address, value *big.Int) Env {
	return Env{
		TxID:      uuid.NewString(),
		Sender:    sender,
		Value:     CopyWei(value),
		Timestamp: time.Now().UTC(),
	}
}

// Payment returns the attached value, zero when none was sent.
func (e Env) Payment() *big.Int {
	return CopyWei(e.Value)
}
