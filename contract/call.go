package contract

import (
	"context"
	"strconv"

	"nfc_contract/sdk"
)

// Action names accepted by Call.
const (
	ActionProjectCreate  = "project_create"
	ActionProjectPause   = "project_pause"
	ActionProjectUnpause = "project_unpause"
	ActionMint           = "mint"
	ActionPause          = "pause"
	ActionUnpause        = "unpause"
	ActionSetTreasury    = "set_treasury"
	ActionSetFee         = "set_fee"
	ActionTransferAdmin  = "transfer_admin"
)

// Call runs a mutating operation from its action name and compact text payload.
// It returns the new id for project_create and mint, and "ok" otherwise.
//
// Payloads:
//
//	project_create  author|externalUrl|contentId|name|description|license|price|maxSupply[|initialContentId]
//	mint            recipient|projectId|contentId
//	project_pause   projectId
//	project_unpause projectId
//	pause, unpause  (empty)
//	set_treasury    address
//	set_fee         feeInBp
//	transfer_admin  address
func (c *Contract) Call(ctx context.Context, env sdk.Env, action string, payload string) (string, error) {
	switch action {
	case ActionProjectCreate:
		args, err := decodeCreateProjectArgs(payload)
		if err != nil {
			return "", err
		}
		return idResult(c.CreateProject(ctx, env, args))

	case ActionMint:
		recipient, projectID, contentID, err := decodeMintArgs(payload)
		if err != nil {
			return "", err
		}
		return idResult(c.Mint(ctx, env, recipient, projectID, contentID))

	case ActionProjectPause, ActionProjectUnpause:
		raw, err := unwrapPayload(payload, "project id missing")
		if err != nil {
			return "", err
		}
		id, err := parseUintField(raw, "project id")
		if err != nil {
			return "", err
		}
		if action == ActionProjectPause {
			return okResult(c.PauseProject(ctx, env, id))
		}
		return okResult(c.UnpauseProject(ctx, env, id))

	case ActionPause:
		return okResult(c.Pause(ctx, env))

	case ActionUnpause:
		return okResult(c.Unpause(ctx, env))

	case ActionSetTreasury, ActionTransferAdmin:
		raw, err := unwrapPayload(payload, "address missing")
		if err != nil {
			return "", err
		}
		addr, err := parseAddressField(raw, "address")
		if err != nil {
			return "", err
		}
		if action == ActionSetTreasury {
			return okResult(c.SetTreasury(ctx, env, addr))
		}
		return okResult(c.TransferAdmin(ctx, env, addr))

	case ActionSetFee:
		raw, err := unwrapPayload(payload, "fee missing")
		if err != nil {
			return "", err
		}
		bp, err := parseUintField(raw, "fee")
		if err != nil {
			return "", err
		}
		return okResult(c.SetFeeInBp(ctx, env, bp))
	}
	return "", revert(ErrInvalidPayload, "unknown action %q", action)
}

func idResult(id uint64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

func okResult(err error) (string, error) {
	if err != nil {
		return "", err
	}
	return "ok", nil
}
