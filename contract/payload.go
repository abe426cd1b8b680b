package contract

import (
	"math/big"
	"strconv"
	"strings"

	"nfc_contract/sdk"
)

// decodeCreateProjectArgs unpacks the pipe-delimited payload used for project_create calls:
// author|externalUrl|contentId|name|description|license|price|maxSupply|initialContentId
func decodeCreateProjectArgs(payload string) (CreateProjectArgs, error) {
	raw, err := unwrapPayload(payload, "project payload missing")
	if err != nil {
		return CreateProjectArgs{}, err
	}
	parts := strings.Split(raw, "|")
	if len(parts) < 8 || len(parts) > 9 {
		return CreateProjectArgs{}, revert(ErrInvalidPayload, "project payload needs 8 or 9 fields, got %d", len(parts))
	}
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	args := CreateProjectArgs{
		ExternalURL:      strings.TrimSpace(get(1)),
		ContentID:        strings.TrimSpace(get(2)),
		Name:             strings.TrimSpace(get(3)),
		Description:      strings.TrimSpace(get(4)),
		License:          strings.TrimSpace(get(5)),
		InitialContentID: strings.TrimSpace(get(8)),
	}
	if args.Author, err = parseAddressField(get(0), "author"); err != nil {
		return args, err
	}
	if args.Price, err = parseWeiField(get(6), "price"); err != nil {
		return args, err
	}
	if args.MaxSupply, err = parseUintField(get(7), "max supply"); err != nil {
		return args, err
	}
	return args, nil
}

// decodeMintArgs expects `recipient|projectId|contentId`.
func decodeMintArgs(payload string) (sdk.Address, uint64, string, error) {
	raw, err := unwrapPayload(payload, "mint payload missing")
	if err != nil {
		return sdk.ZeroAddress, 0, "", err
	}
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return sdk.ZeroAddress, 0, "", revert(ErrInvalidPayload, "mint payload requires recipient|projectId|contentId")
	}
	recipient, err := parseAddressField(parts[0], "recipient")
	if err != nil {
		return sdk.ZeroAddress, 0, "", err
	}
	projectID, err := parseUintField(parts[1], "project id")
	if err != nil {
		return sdk.ZeroAddress, 0, "", err
	}
	return recipient, projectID, strings.TrimSpace(parts[2]), nil
}

// unwrapPayload trims quotes and whitespace, failing if the payload is empty.
func unwrapPayload(payload string, errMsg string) (string, error) {
	raw := strings.TrimSpace(payload)
	if raw == "" {
		return "", revert(ErrInvalidPayload, "%s", errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				raw = strings.TrimSpace(unquoted)
			} else {
				raw = strings.TrimSpace(raw[1 : len(raw)-1])
			}
			if raw == "" {
				return "", revert(ErrInvalidPayload, "%s", errMsg)
			}
		}
	}
	return raw, nil
}

// parseUintField is the uint variant used for ids, supplies and fees.
func parseUintField(val string, field string) (uint64, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, revert(ErrInvalidPayload, "%s missing", field)
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, revert(ErrInvalidPayload, "invalid %s", field)
	}
	return n, nil
}

// parseAddressField accepts hex addresses only, the zero address is left to the operation to reject.
func parseAddressField(val string, field string) (sdk.Address, error) {
	a, err := sdk.ParseAddress(val)
	if err != nil {
		return sdk.ZeroAddress, revert(ErrInvalidPayload, "invalid %s", field)
	}
	return a, nil
}

func parseWeiField(val string, field string) (*big.Int, error) {
	v, err := sdk.ParseWei(val)
	if err != nil {
		return nil, revert(ErrInvalidPayload, "invalid %s", field)
	}
	return v, nil
}
