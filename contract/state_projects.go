package contract

import (
	"fmt"
	"strconv"

	"nfc_contract/sdk"
)

// -----------------------------------------------------------------------------
// Projects
// -----------------------------------------------------------------------------

// loadProject joins the meta blob with the status record. Missing projects
// revert with ErrNotFound.
func loadProject(st State, id uint64) (*Project, error) {
	ptr := st.Get(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil, revert(ErrNotFound, "project %d", id)
	}
	prj, err := DecodeProject([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode project %d: %w", id, err)
	}
	if sp := st.Get(projectStatusKey(id)); sp != nil && *sp != "" {
		status, err := DecodeProjectStatus([]byte(*sp))
		if err != nil {
			return nil, fmt.Errorf("decode project status %d: %w", id, err)
		}
		prj.Minted = status.Minted
		prj.Paused = status.Paused
	}
	return prj, nil
}

// saveProject writes meta and status. Meta never changes after creation, so
// stateSetIfChanged turns repeated saves into status-only writes.
func saveProject(st State, prj *Project) {
	stateSetIfChanged(st, projectKey(prj.ID), string(EncodeProject(prj)))
	saveProjectStatus(st, prj)
}

func saveProjectStatus(st State, prj *Project) {
	stateSetIfChanged(st, projectStatusKey(prj.ID), string(EncodeProjectStatus(projectStatus{
		Minted: prj.Minted,
		Paused: prj.Paused,
	})))
}

// -----------------------------------------------------------------------------
// Tokens
// -----------------------------------------------------------------------------

func loadToken(st State, id uint64) (*Token, error) {
	ptr := st.Get(tokenKey(id))
	if ptr == nil || *ptr == "" {
		return nil, revert(ErrNotFound, "token %d", id)
	}
	tok, err := DecodeToken([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode token %d: %w", id, err)
	}
	return tok, nil
}

func saveToken(st State, tok *Token) {
	st.Set(tokenKey(tok.ID), string(EncodeToken(tok)))
}

// getOwnerBalance returns how many tokens owner holds.
func getOwnerBalance(st State, owner sdk.Address) uint64 {
	ptr := st.Get(ownerBalanceKey(owner))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setOwnerBalance(st State, owner sdk.Address, n uint64) {
	st.Set(ownerBalanceKey(owner), strconv.FormatUint(n, 10))
}
