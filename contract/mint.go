package contract

import (
	"context"

	"nfc_contract/sdk"
)

// -----------------------------------------------------------------------------
// Minting Engine
// -----------------------------------------------------------------------------

// Mint creates the next token of projectID for recipient. The sender pays with
// env.Value, anything above the price is refunded.
// Example payload: Mint(ctx, sdk.NewEnv(payer, sdk.Ether(1)), payer, 0, "CID1")
func (c *Contract) Mint(ctx context.Context, env sdk.Env, recipient sdk.Address, projectID uint64, tokenContentID string) (uint64, error) {
	var tokenID uint64
	err := c.exec(ctx, "mint", env, func(t *txn) error {
		cfg, err := t.config()
		if err != nil {
			return err
		}
		if err := requireNotGloballyPaused(cfg); err != nil {
			return err
		}
		prj, err := loadProject(t.st, projectID)
		if err != nil {
			return err
		}
		tokenID, err = c.mint(t, cfg, prj, recipient, tokenContentID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return tokenID, nil
}

// mint stages the token, then settles. Staged writes only land if settle and
// everything after it succeeds.
func (c *Contract) mint(t *txn, cfg *GlobalConfig, prj *Project, recipient sdk.Address, contentID string) (uint64, error) {
	if err := requireProjectNotPaused(prj); err != nil {
		return 0, err
	}
	if prj.SoldOut() {
		return 0, revert(ErrEditionLimitReached, "project %d minted %d of %d", prj.ID, prj.Minted, prj.MaxSupply)
	}
	if sdk.IsZero(recipient) {
		return 0, revert(ErrInvalidRecipient, "")
	}

	id := nextID(t.st, TokensCount)
	saveToken(t.st, &Token{ID: id, ProjectID: prj.ID, Owner: recipient, ContentID: contentID})
	prj.Minted++
	saveProjectStatus(t.st, prj)
	setOwnerBalance(t.st, recipient, getOwnerBalance(t.st, recipient)+1)
	addIDToIndex(t.st, ownerTokensIndex(recipient), id)

	if err := c.settle(t, cfg, t.env.Sender, prj.Author, prj.Price, t.env.Payment()); err != nil {
		return 0, err
	}
	t.emit(Minted{Recipient: recipient, TokenID: id})
	return id, nil
}

// ----- Reads -----

// GetToken returns token id or ErrNotFound.
func (c *Contract) GetToken(ctx context.Context, id uint64) (*Token, error) {
	var tok *Token
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		var err error
		tok, err = loadToken(st, id)
		return err
	})
	return tok, err
}

// OwnerOf returns the owner of a token.
func (c *Contract) OwnerOf(ctx context.Context, id uint64) (sdk.Address, error) {
	tok, err := c.GetToken(ctx, id)
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return tok.Owner, nil
}

// TokenURI is the base content uri followed by the token's content id.
func (c *Contract) TokenURI(ctx context.Context, id uint64) (string, error) {
	var uri string
	err := c.view(ctx, func(st State, cfg *GlobalConfig) error {
		tok, err := loadToken(st, id)
		if err != nil {
			return err
		}
		uri = cfg.BaseContentURI + tok.ContentID
		return nil
	})
	return uri, err
}

// BalanceOf counts the tokens held by owner.
func (c *Contract) BalanceOf(ctx context.Context, owner sdk.Address) (uint64, error) {
	var n uint64
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		n = getOwnerBalance(st, owner)
		return nil
	})
	return n, err
}

// TotalSupply counts tokens across all projects.
func (c *Contract) TotalSupply(ctx context.Context) (uint64, error) {
	var n uint64
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		n = getCount(st, TokensCount)
		return nil
	})
	return n, err
}

// TokensOfOwner lists token ids minted to owner, oldest first.
func (c *Contract) TokensOfOwner(ctx context.Context, owner sdk.Address) ([]uint64, error) {
	var ids []uint64
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		var err error
		ids, err = getIDsFromIndex(st, ownerTokensIndex(owner))
		return err
	})
	return ids, err
}

// QuoteMint returns what a mint of projectID costs right now and how it splits.
func (c *Contract) QuoteMint(ctx context.Context, projectID uint64) (*Quote, error) {
	var q *Quote
	err := c.view(ctx, func(st State, cfg *GlobalConfig) error {
		prj, err := loadProject(st, projectID)
		if err != nil {
			return err
		}
		q = quote(prj.Price, cfg.FeeInBp)
		return nil
	})
	return q, err
}

