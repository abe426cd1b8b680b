package contract_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

func TestInit(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()

	cfg, err := ct.c.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, adminAddress, cfg.Admin)
	assert.Equal(t, treasuryAddress, cfg.Treasury)
	assert.Equal(t, sdk.ContractAddress(adminAddress, 0), cfg.Escrow)
	assert.Equal(t, uint64(defaultFeeInBp), cfg.FeeInBp)
	assert.False(t, cfg.Paused)
	assert.Equal(t, "ipfs://", cfg.BaseContentURI)

	assert.Equal(t, []contract.Event{contract.AdminTransferred{Previous: sdk.ZeroAddress, Admin: adminAddress}}, ct.lastEvents(0))

	err = ct.c.Init(ctx, sdk.NewEnv(outsiderAddress, nil), contract.InitArgs{Treasury: outsiderAddress})
	callContract(t, "init", false, err)
	assert.ErrorIs(t, err, contract.ErrAlreadyInitialized)
}

func TestInitValidation(t *testing.T) {
	ctx := context.Background()
	c, err := contract.New(contract.NewMemState(), sdk.NewMemLedger(nil))
	require.NoError(t, err)

	err = c.Init(ctx, sdk.NewEnv(adminAddress, nil), contract.InitArgs{Treasury: treasuryAddress, FeeInBp: 10000})
	assert.ErrorIs(t, err, contract.ErrInvalidFee)
	err = c.Init(ctx, sdk.NewEnv(adminAddress, nil), contract.InitArgs{FeeInBp: 100})
	assert.ErrorIs(t, err, contract.ErrInvalidAddress)
	err = c.Init(ctx, sdk.NewEnv(adminAddress, big.NewInt(1)), contract.InitArgs{Treasury: treasuryAddress})
	assert.ErrorIs(t, err, contract.ErrUnexpectedPayment)
	assert.False(t, c.Initialized())
}

func TestUninitializedContract(t *testing.T) {
	ctx := context.Background()
	c, err := contract.New(contract.NewMemState(), sdk.NewMemLedger(nil))
	require.NoError(t, err)

	_, err = c.CreateProject(ctx, sdk.NewEnv(authorAddress, nil), projectArgs())
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
	_, err = c.Mint(ctx, sdk.NewEnv(signerAddress, oneEther), signerAddress, 0, "CID1")
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
	assert.ErrorIs(t, c.Pause(ctx, sdk.NewEnv(adminAddress, nil)), contract.ErrNotInitialized)
	_, err = c.GetProject(ctx, 0)
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
	_, err = c.Config(ctx)
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
}

func TestPauseUnpause(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()
	ct.createProject(t)

	err := ct.c.Pause(ctx, sdk.NewEnv(signerAddress, nil))
	callContract(t, "pause", false, err)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	before := ct.c.Events().Len()
	callContract(t, "pause", true, ct.c.Pause(ctx, sdk.NewEnv(adminAddress, nil)))
	assert.Equal(t, []contract.Event{contract.Paused{Admin: adminAddress}}, ct.lastEvents(before))

	err = ct.c.Pause(ctx, sdk.NewEnv(adminAddress, nil))
	assert.ErrorIs(t, err, contract.ErrAlreadyPaused)

	err = ct.c.Unpause(ctx, sdk.NewEnv(signerAddress, nil))
	callContract(t, "unpause", false, err)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	before = ct.c.Events().Len()
	callContract(t, "unpause", true, ct.c.Unpause(ctx, sdk.NewEnv(adminAddress, nil)))
	assert.Equal(t, []contract.Event{contract.Unpaused{Admin: adminAddress}}, ct.lastEvents(before))

	err = ct.c.Unpause(ctx, sdk.NewEnv(adminAddress, nil))
	assert.ErrorIs(t, err, contract.ErrNotPaused)
}

func TestSetFeeInBp(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()

	err := ct.c.SetFeeInBp(ctx, sdk.NewEnv(signerAddress, nil), 250)
	callContract(t, "setFeeInBp", false, err)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	err = ct.c.SetFeeInBp(ctx, sdk.NewEnv(adminAddress, nil), 10000)
	callContract(t, "setFeeInBp", false, err)
	assert.ErrorIs(t, err, contract.ErrInvalidFee)

	before := ct.c.Events().Len()
	callContract(t, "setFeeInBp", true, ct.c.SetFeeInBp(ctx, sdk.NewEnv(adminAddress, nil), 9999))
	assert.Equal(t, []contract.Event{contract.FeeUpdated{Admin: adminAddress, FeeInBp: 9999}}, ct.lastEvents(before))

	callContract(t, "setFeeInBp", true, ct.c.SetFeeInBp(ctx, sdk.NewEnv(adminAddress, nil), 250))
	ct.createProject(t)
	treasuryBefore := ct.balance(treasuryAddress)
	ct.mint(t, 0, "CID1", oneEther, true)
	assertWei(t, sdk.Gwei(25_000_000), diff(treasuryBefore, ct.balance(treasuryAddress)), "2.5 percent of one ether")
}

func TestZeroFeeSkipsTreasury(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()
	require.NoError(t, ct.c.SetFeeInBp(ctx, sdk.NewEnv(adminAddress, nil), 0))
	ct.createProject(t)

	treasuryBefore := ct.balance(treasuryAddress)
	authorBefore := ct.balance(authorAddress)
	ct.mint(t, 0, "CID1", oneEther, true)
	assertWei(t, big.NewInt(0), diff(treasuryBefore, ct.balance(treasuryAddress)))
	assertWei(t, oneEther, diff(authorBefore, ct.balance(authorAddress)))
}

func TestSetTreasury(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()

	err := ct.c.SetTreasury(ctx, sdk.NewEnv(signerAddress, nil), signerAddress)
	callContract(t, "setTreasury", false, err)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	err = ct.c.SetTreasury(ctx, sdk.NewEnv(adminAddress, nil), sdk.ZeroAddress)
	assert.ErrorIs(t, err, contract.ErrInvalidAddress)

	before := ct.c.Events().Len()
	callContract(t, "setTreasury", true, ct.c.SetTreasury(ctx, sdk.NewEnv(adminAddress, nil), outsiderAddress))
	assert.Equal(t, []contract.Event{contract.TreasuryUpdated{Admin: adminAddress, Treasury: outsiderAddress}}, ct.lastEvents(before))

	ct.createProject(t)
	oldBefore := ct.balance(treasuryAddress)
	newBefore := ct.balance(outsiderAddress)
	ct.mint(t, 0, "CID1", oneEther, true)

	fee, _ := contract.ComputeShares(oneEther, defaultFeeInBp)
	assertWei(t, big.NewInt(0), diff(oldBefore, ct.balance(treasuryAddress)))
	assertWei(t, fee, diff(newBefore, ct.balance(outsiderAddress)))
}

func TestTransferAdmin(t *testing.T) {
	ct := setupContractTest(t)
	ctx := context.Background()

	err := ct.c.TransferAdmin(ctx, sdk.NewEnv(signerAddress, nil), signerAddress)
	callContract(t, "transferAdmin", false, err)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	err = ct.c.TransferAdmin(ctx, sdk.NewEnv(adminAddress, nil), sdk.ZeroAddress)
	assert.ErrorIs(t, err, contract.ErrInvalidAddress)

	before := ct.c.Events().Len()
	callContract(t, "transferAdmin", true, ct.c.TransferAdmin(ctx, sdk.NewEnv(adminAddress, nil), outsiderAddress))
	assert.Equal(t, []contract.Event{contract.AdminTransferred{Previous: adminAddress, Admin: outsiderAddress}}, ct.lastEvents(before))

	assert.ErrorIs(t, ct.c.Pause(ctx, sdk.NewEnv(adminAddress, nil)), contract.ErrUnauthorized)
	require.NoError(t, ct.c.Pause(ctx, sdk.NewEnv(outsiderAddress, nil)))
}

func TestAdminOpsRejectValue(t *testing.T) {
	ct := setupContractTest(t)
	err := ct.c.Pause(context.Background(), sdk.NewEnv(adminAddress, big.NewInt(1)))
	callContract(t, "pause", false, err)
	assert.ErrorIs(t, err, contract.ErrUnexpectedPayment)
}
