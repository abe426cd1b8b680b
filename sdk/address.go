package sdk

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Address is the account identifier used by the contract and its ledger.
type Address = common.Address

// ZeroAddress is never a valid author, recipient or admin.
var ZeroAddress Address

// ParseAddress accepts 0x-prefixed (or bare) 40 hex digit strings and nothing else.
// Example payload: sdk.ParseAddress("0xbCF4832efF0AC4b832CA6e3A47Dc7dab70189a07")
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return ZeroAddress, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// MustParseAddress is ParseAddress for constants and tests, it panics on bad input.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether a is the zero address.
func IsZero(a Address) bool {
	return a == ZeroAddress
}

// ContractAddress derives the escrow account of a contract deployed by deployer,
// the same way an EVM derives CREATE addresses.
// Example payload: sdk.ContractAddress(admin, 0)
func ContractAddress(deployer Address, nonce uint64) Address {
	return crypto.CreateAddress(deployer, nonce)
}
