package contract

// migrations[v] brings a layout at version v to v+1.
var migrations = map[int]func(st State) error{
	0: rebuildIndexes,
}

// migrate runs pending layout steps inside one overlay, so a failing step
// leaves the stored state untouched.
func (c *Contract) migrate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !isContractInitialized(c.state) {
		return nil
	}
	from, err := loadSchema(c.state)
	if err != nil {
		return err
	}
	if from > SchemaVersion {
		return revert(ErrSchemaTooNew, "stored %d, supported %d", from, SchemaVersion)
	}
	if from == SchemaVersion {
		return nil
	}
	st := newOverlay(c.state)
	for v := from; v < SchemaVersion; v++ {
		if err := migrations[v](st); err != nil {
			return err
		}
		c.log.Info("Migrated contract state", "from", v, "to", v+1)
	}
	saveSchema(st, SchemaVersion)
	st.commit()
	return nil
}

// rebuildIndexes derives the author and owner indexes and the owner balances
// from the project and token records. Version 0 stores records only.
func rebuildIndexes(st State) error {
	projects := getCount(st, ProjectsCount)
	for id := uint64(0); id < projects; id++ {
		prj, err := loadProject(st, id)
		if err != nil {
			return err
		}
		addIDToIndex(st, authorProjectsIndex(prj.Author), id)
	}
	tokens := getCount(st, TokensCount)
	for id := uint64(0); id < tokens; id++ {
		tok, err := loadToken(st, id)
		if err != nil {
			return err
		}
		setOwnerBalance(st, tok.Owner, getOwnerBalance(st, tok.Owner)+1)
		addIDToIndex(st, ownerTokensIndex(tok.Owner), id)
	}
	return nil
}
