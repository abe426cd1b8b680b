package rpc

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

var (
	adminAddress    = sdk.MustParseAddress("0x00000000000000000000000000000000000000a1")
	treasuryAddress = sdk.MustParseAddress("0x00000000000000000000000000000000000000b2")
	signerAddress   = sdk.MustParseAddress("0x00000000000000000000000000000000000000c3")
	authorAddress   = sdk.MustParseAddress("0x00000000000000000000000000000000000000d4")
)

func setupRPCTest(t *testing.T) (*gethrpc.Client, *contract.Contract) {
	t.Helper()
	ledger := sdk.NewMemLedger(map[sdk.Address]*big.Int{
		signerAddress: sdk.Ether(10),
		authorAddress: sdk.Ether(10),
	})
	c, err := contract.New(contract.NewMemState(), ledger)
	require.NoError(t, err)
	require.NoError(t, c.Init(context.Background(), sdk.NewEnv(adminAddress, nil), contract.InitArgs{
		Name:           "Non-Fungible Code",
		Symbol:         "NFC",
		BaseContentURI: "ipfs://",
		Treasury:       treasuryAddress,
		FeeInBp:        1000,
	}))

	srv, err := NewServer(c)
	require.NoError(t, err)
	client := gethrpc.DialInProc(srv)
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})
	return client, c
}

func tx(from sdk.Address, value *big.Int) TxArgs {
	return TxArgs{From: from, Value: (*hexutil.Big)(value)}
}

func createProject(t *testing.T, client *gethrpc.Client) uint64 {
	t.Helper()
	var id uint64
	err := client.Call(&id, "nfc_createProject", tx(authorAddress, sdk.Ether(1)), CreateProjectArgs{
		Author:           authorAddress,
		ExternalURL:      "https://example.com",
		ContentID:        "PCID",
		Name:             "Name",
		Description:      "Description",
		License:          "NIFTY License",
		Price:            (*hexutil.Big)(sdk.Ether(1)),
		MaxSupply:        2,
		InitialContentID: "CID0",
	})
	require.NoError(t, err)
	return id
}

func TestRPCCreateAndMint(t *testing.T) {
	client, _ := setupRPCTest(t)
	assert.Equal(t, uint64(0), createProject(t, client))

	var tokenID uint64
	require.NoError(t, client.Call(&tokenID, "nfc_mint", tx(signerAddress, sdk.Ether(1)), signerAddress, 0, "CID1"))
	assert.Equal(t, uint64(1), tokenID)

	var prj contract.Project
	require.NoError(t, client.Call(&prj, "nfc_getProject", 0))
	assert.Equal(t, uint64(2), prj.Minted)
	assert.Equal(t, authorAddress, prj.Author)

	var tok contract.Token
	require.NoError(t, client.Call(&tok, "nfc_getToken", 1))
	assert.Equal(t, signerAddress, tok.Owner)

	var uri string
	require.NoError(t, client.Call(&uri, "nfc_tokenURI", 1))
	assert.Equal(t, "ipfs://CID1", uri)

	var owner sdk.Address
	require.NoError(t, client.Call(&owner, "nfc_ownerOf", 1))
	assert.Equal(t, signerAddress, owner)

	var supply uint64
	require.NoError(t, client.Call(&supply, "nfc_totalSupply"))
	assert.Equal(t, uint64(2), supply)

	var q contract.Quote
	require.NoError(t, client.Call(&q, "nfc_quoteMint", 0))
	assert.Equal(t, "100000000000000000", q.Fee.String())

	var bal hexutil.Big
	require.NoError(t, client.Call(&bal, "nfc_getBalance", treasuryAddress))
	assert.Equal(t, "200000000000000000", bal.ToInt().String())
}

func TestRPCRevertCarriesSymbol(t *testing.T) {
	client, _ := setupRPCTest(t)
	createProject(t, client)

	var tokenID uint64
	err := client.Call(&tokenID, "nfc_mint", tx(signerAddress, big.NewInt(1)), signerAddress, 0, "CID1")
	require.Error(t, err)

	var rpcErr gethrpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, 3, rpcErr.ErrorCode())

	var dataErr gethrpc.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "insufficient_payment", dataErr.ErrorData())
}

func TestRPCAdminOps(t *testing.T) {
	client, c := setupRPCTest(t)

	err := client.Call(nil, "nfc_pause", tx(signerAddress, nil))
	require.Error(t, err)

	require.NoError(t, client.Call(nil, "nfc_setFeeInBp", tx(adminAddress, nil), 250))
	require.NoError(t, client.Call(nil, "nfc_setTreasury", tx(adminAddress, nil), signerAddress))
	require.NoError(t, client.Call(nil, "nfc_pause", tx(adminAddress, nil)))

	var cfg contract.GlobalConfig
	require.NoError(t, client.Call(&cfg, "nfc_config"))
	assert.Equal(t, uint64(250), cfg.FeeInBp)
	assert.Equal(t, signerAddress, cfg.Treasury)
	assert.True(t, cfg.Paused)

	var logs []map[string]interface{}
	require.NoError(t, client.Call(&logs, "nfc_getLogs", 1))
	require.Len(t, logs, 3)
	assert.Equal(t, "FeeUpdated", logs[0]["event"])
	assert.Equal(t, "TreasuryUpdated", logs[1]["event"])
	assert.Equal(t, "Paused", logs[2]["event"])
	assert.Equal(t, c.Events().Len(), 4)
}

func TestRPCEventSubscription(t *testing.T) {
	client, _ := setupRPCTest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := make(chan map[string]interface{}, 8)
	sub, err := client.Subscribe(ctx, Namespace, ch, "events")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	createProject(t, client)

	var names []interface{}
	for len(names) < 2 {
		select {
		case rec := <-ch:
			names = append(names, rec["event"])
		case err := <-sub.Err():
			t.Fatalf("subscription failed: %v", err)
		case <-ctx.Done():
			t.Fatalf("received %d of 2 events", len(names))
		}
	}
	assert.Equal(t, []interface{}{"ProjectCreated", "Minted"}, names)
}

func TestRPCCallPipePayload(t *testing.T) {
	client, c := setupRPCTest(t)
	createProject(t, client)

	var res string
	require.NoError(t, client.Call(&res, "nfc_call", tx(signerAddress, sdk.Ether(1)), contract.ActionMint, signerAddress.Hex()+"|0|CID1"))
	assert.Equal(t, "1", res)

	owner, err := c.OwnerOf(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, signerAddress, owner)

	err = client.Call(&res, "nfc_call", tx(signerAddress, nil), contract.ActionMint, "garbage")
	var dataErr gethrpc.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "invalid_payload", dataErr.ErrorData())
}
