package contract

import (
	"context"

	"nfc_contract/sdk"
)

// -----------------------------------------------------------------------------
// Admin Operations
// -----------------------------------------------------------------------------

// adminOp runs fn for the admin only, with the loaded config. fn mutates cfg
// in place and the result is saved when it returns nil.
func (c *Contract) adminOp(ctx context.Context, op string, env sdk.Env, fn func(t *txn, cfg *GlobalConfig) error) error {
	return c.exec(ctx, op, env, func(t *txn) error {
		cfg, err := t.config()
		if err != nil {
			return err
		}
		if err := requireAdmin(cfg, t.env.Sender); err != nil {
			return err
		}
		if err := requireNoPayment(t.env); err != nil {
			return err
		}
		if err := fn(t, cfg); err != nil {
			return err
		}
		saveContractConfig(t.st, cfg)
		return nil
	})
}

// SetTreasury changes where platform fees go.
func (c *Contract) SetTreasury(ctx context.Context, env sdk.Env, treasury sdk.Address) error {
	return c.adminOp(ctx, "setTreasury", env, func(t *txn, cfg *GlobalConfig) error {
		if sdk.IsZero(treasury) {
			return revert(ErrInvalidAddress, "treasury")
		}
		cfg.Treasury = treasury
		t.emit(TreasuryUpdated{Admin: cfg.Admin, Treasury: treasury})
		return nil
	})
}

// SetFeeInBp changes the platform fee, must stay below 10000 bp.
func (c *Contract) SetFeeInBp(ctx context.Context, env sdk.Env, feeInBp uint64) error {
	return c.adminOp(ctx, "setFeeInBp", env, func(t *txn, cfg *GlobalConfig) error {
		if feeInBp >= BpsBase {
			return revert(ErrInvalidFee, "%d bp", feeInBp)
		}
		cfg.FeeInBp = feeInBp
		t.emit(FeeUpdated{Admin: cfg.Admin, FeeInBp: feeInBp})
		return nil
	})
}

// Pause stops creation and minting for every project.
func (c *Contract) Pause(ctx context.Context, env sdk.Env) error {
	return c.adminOp(ctx, "pause", env, func(t *txn, cfg *GlobalConfig) error {
		if cfg.Paused {
			return revert(ErrAlreadyPaused, "")
		}
		cfg.Paused = true
		t.emit(Paused{Admin: cfg.Admin})
		return nil
	})
}

func (c *Contract) Unpause(ctx context.Context, env sdk.Env) error {
	return c.adminOp(ctx, "unpause", env, func(t *txn, cfg *GlobalConfig) error {
		if !cfg.Paused {
			return revert(ErrNotPaused, "")
		}
		cfg.Paused = false
		t.emit(Unpaused{Admin: cfg.Admin})
		return nil
	})
}

// TransferAdmin hands the admin role to next. Only the current admin may call it.
func (c *Contract) TransferAdmin(ctx context.Context, env sdk.Env, next sdk.Address) error {
	return c.adminOp(ctx, "transferAdmin", env, func(t *txn, cfg *GlobalConfig) error {
		if sdk.IsZero(next) {
			return revert(ErrInvalidAddress, "admin")
		}
		prev := cfg.Admin
		cfg.Admin = next
		t.emit(AdminTransferred{Previous: prev, Admin: next})
		return nil
	})
}

// ----- Reads -----

// Config returns a copy of the global configuration.
func (c *Contract) Config(ctx context.Context) (*GlobalConfig, error) {
	var out *GlobalConfig
	err := c.view(ctx, func(_ State, cfg *GlobalConfig) error {
		cp := *cfg
		out = &cp
		return nil
	})
	return out, err
}

func (c *Contract) Name(ctx context.Context) (string, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.Name, nil
}

func (c *Contract) Symbol(ctx context.Context) (string, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.Symbol, nil
}
