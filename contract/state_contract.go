package contract

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized(st State) bool {
	ptr := st.Get(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the contract configuration, nil when not initialized.
func loadContractConfig(st State) (*GlobalConfig, error) {
	ptr := st.Get(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	cfg, err := DecodeContractConfig([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode contract config: %w", err)
	}
	return cfg, nil
}

// requireInitialized returns the config or ErrNotInitialized.
func requireInitialized(st State) (*GlobalConfig, error) {
	cfg, err := loadContractConfig(st)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, revert(ErrNotInitialized, "")
	}
	return cfg, nil
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(st State, cfg *GlobalConfig) {
	stateSetIfChanged(st, ContractConfigKey, string(EncodeContractConfig(cfg)))
}

// -----------------------------------------------------------------------------
// Schema Version
// -----------------------------------------------------------------------------

// loadSchema returns the stored layout version, 0 for pre-versioned state.
func loadSchema(st State) (int, error) {
	ptr := st.Get(SchemaKey)
	if ptr == nil || *ptr == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(*ptr)
	if err != nil {
		return 0, fmt.Errorf("schema key %q: %w", *ptr, err)
	}
	return v, nil
}

func saveSchema(st State, v int) {
	stateSetIfChanged(st, SchemaKey, strconv.Itoa(v))
}
