package contract

import (
	"context"

	"nfc_contract/sdk"
)

// -----------------------------------------------------------------------------
// Project Registry
// -----------------------------------------------------------------------------

// CreateProject registers a new edition and returns its id. With a non-empty
// InitialContentID the first token is minted to the author in the same call,
// paid by the sender; otherwise the call must not carry value.
// Example payload: CreateProject(ctx, sdk.NewEnv(author, sdk.Ether(1)), CreateProjectArgs{Author: author, Name: "genesis", Price: sdk.Ether(1), MaxSupply: 2, InitialContentID: "CID0"})
func (c *Contract) CreateProject(ctx context.Context, env sdk.Env, args CreateProjectArgs) (uint64, error) {
	var projectID uint64
	err := c.exec(ctx, "createProject", env, func(t *txn) error {
		cfg, err := t.config()
		if err != nil {
			return err
		}
		if err := requireNotGloballyPaused(cfg); err != nil {
			return err
		}
		if args.Price == nil || args.Price.Sign() <= 0 {
			return revert(ErrInvalidPrice, "%v", args.Price)
		}
		if args.MaxSupply == 0 {
			return revert(ErrInvalidSupply, "")
		}
		if sdk.IsZero(args.Author) {
			return revert(ErrInvalidAuthor, "")
		}
		bundled := args.InitialContentID != ""
		if !bundled {
			if err := requireNoPayment(t.env); err != nil {
				return err
			}
		}

		prj := &Project{
			ID:          nextID(t.st, ProjectsCount),
			Author:      args.Author,
			ExternalURL: args.ExternalURL,
			ContentID:   args.ContentID,
			Name:        args.Name,
			Description: args.Description,
			License:     args.License,
			Price:       sdk.CopyWei(args.Price),
			MaxSupply:   args.MaxSupply,
		}
		saveProject(t.st, prj)
		addIDToIndex(t.st, authorProjectsIndex(prj.Author), prj.ID)
		t.emit(ProjectCreated{Author: prj.Author, ProjectID: prj.ID})
		projectID = prj.ID

		if bundled {
			if _, err := c.mint(t, cfg, prj, prj.Author, args.InitialContentID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return projectID, nil
}

// PauseProject stops minting of one project. Author only.
func (c *Contract) PauseProject(ctx context.Context, env sdk.Env, projectID uint64) error {
	return c.setProjectPaused(ctx, "pauseProject", env, projectID, true)
}

// UnpauseProject resumes minting of one project. Author only.
func (c *Contract) UnpauseProject(ctx context.Context, env sdk.Env, projectID uint64) error {
	return c.setProjectPaused(ctx, "unpauseProject", env, projectID, false)
}

func (c *Contract) setProjectPaused(ctx context.Context, op string, env sdk.Env, projectID uint64, paused bool) error {
	return c.exec(ctx, op, env, func(t *txn) error {
		if _, err := t.config(); err != nil {
			return err
		}
		if err := requireNoPayment(t.env); err != nil {
			return err
		}
		prj, err := requireProjectAuthor(t.st, t.env.Sender, projectID)
		if err != nil {
			return err
		}
		if prj.Paused == paused {
			if paused {
				return revert(ErrAlreadyPaused, "project %d", projectID)
			}
			return revert(ErrNotPaused, "project %d", projectID)
		}
		prj.Paused = paused
		saveProjectStatus(t.st, prj)
		if paused {
			t.emit(ProjectPaused{Author: prj.Author, ProjectID: prj.ID})
		} else {
			t.emit(ProjectUnpaused{Author: prj.Author, ProjectID: prj.ID})
		}
		return nil
	})
}

// ----- Reads -----

// GetProject returns project id or ErrNotFound.
func (c *Contract) GetProject(ctx context.Context, id uint64) (*Project, error) {
	var prj *Project
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		var err error
		prj, err = loadProject(st, id)
		return err
	})
	return prj, err
}

// ProjectCount is the number of projects ever created, also the next id.
func (c *Contract) ProjectCount(ctx context.Context) (uint64, error) {
	var n uint64
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		n = getCount(st, ProjectsCount)
		return nil
	})
	return n, err
}

// ProjectsByAuthor lists the project ids of author, oldest first.
func (c *Contract) ProjectsByAuthor(ctx context.Context, author sdk.Address) ([]uint64, error) {
	var ids []uint64
	err := c.view(ctx, func(st State, _ *GlobalConfig) error {
		var err error
		ids, err = getIDsFromIndex(st, authorProjectsIndex(author))
		return err
	})
	return ids, err
}

// ProjectURI is the base content uri followed by the project's content id.
func (c *Contract) ProjectURI(ctx context.Context, id uint64) (string, error) {
	var uri string
	err := c.view(ctx, func(st State, cfg *GlobalConfig) error {
		prj, err := loadProject(st, id)
		if err != nil {
			return err
		}
		uri = cfg.BaseContentURI + prj.ContentID
		return nil
	})
	return uri, err
}
