package contract

import "nfc_contract/sdk"

// -----------------------------------------------------------------------------
// Access Control Gate
// -----------------------------------------------------------------------------
// Pure checks, none of them touch state.

func requireAdmin(cfg *GlobalConfig, caller sdk.Address) error {
	if caller != cfg.Admin {
		return revert(ErrUnauthorized, "%s is not admin", caller.Hex())
	}
	return nil
}

// requireProjectAuthor loads the project and checks the caller wrote it.
func requireProjectAuthor(st State, caller sdk.Address, projectID uint64) (*Project, error) {
	prj, err := loadProject(st, projectID)
	if err != nil {
		return nil, err
	}
	if caller != prj.Author {
		return nil, revert(ErrUnauthorized, "%s is not author of project %d", caller.Hex(), projectID)
	}
	return prj, nil
}

func requireNotGloballyPaused(cfg *GlobalConfig) error {
	if cfg.Paused {
		return revert(ErrContractPaused, "")
	}
	return nil
}

func requireProjectNotPaused(prj *Project) error {
	if prj.Paused {
		return revert(ErrProjectPaused, "project %d", prj.ID)
	}
	return nil
}

// requireNoPayment rejects value sent to a non-payable operation.
func requireNoPayment(env sdk.Env) error {
	if env.Value != nil && env.Value.Sign() != 0 {
		return revert(ErrUnexpectedPayment, "%s wei", env.Value)
	}
	return nil
}
