package contract

import (
	"math/big"

	"nfc_contract/sdk"
)

// Project is one mintable edition.
type Project struct {
	ID          uint64
	Author      sdk.Address
	ExternalURL string
	ContentID   string
	Name        string
	Description string
	License     string
	Price       *big.Int
	MaxSupply   uint64
	Minted      uint64
	Paused      bool
}

// Remaining returns how many tokens the project may still mint.
func (p *Project) Remaining() uint64 {
	return p.MaxSupply - p.Minted
}

// SoldOut reports whether the edition limit is reached.
func (p *Project) SoldOut() bool {
	return p.Minted >= p.MaxSupply
}

// projectStatus is the mutable tail of a project, stored apart from the meta blob.
type projectStatus struct {
	Minted uint64
	Paused bool
}

// Token is one minted unit of a project.
type Token struct {
	ID        uint64
	ProjectID uint64
	Owner     sdk.Address
	ContentID string
}

// GlobalConfig is the process-wide contract configuration.
type GlobalConfig struct {
	Admin          sdk.Address
	Treasury       sdk.Address
	Escrow         sdk.Address // account payments pass through during settlement
	FeeInBp        uint64
	Paused         bool
	Name           string
	Symbol         string
	BaseContentURI string
}

// InitArgs are the construction-time parameters of the contract.
type InitArgs struct {
	Name           string
	Symbol         string
	BaseContentURI string
	Treasury       sdk.Address
	FeeInBp        uint64
}

// CreateProjectArgs carries the createProject parameters. A non-empty
// InitialContentID mints the first token to Author within the same call.
type CreateProjectArgs struct {
	Author           sdk.Address
	ExternalURL      string
	ContentID        string
	Name             string
	Description      string
	License          string
	Price            *big.Int
	MaxSupply        uint64
	InitialContentID string
}

// Quote is the split of one mint payment.
type Quote struct {
	Price       *big.Int
	Fee         *big.Int
	AuthorShare *big.Int
}

// settlement records the value moved by one successful mint, for metrics.
type settlement struct {
	fee    *big.Int
	author *big.Int
	refund *big.Int
}
