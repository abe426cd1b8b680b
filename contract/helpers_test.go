package contract_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
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
	outsiderAddress = sdk.MustParseAddress("0x00000000000000000000000000000000000000e5")
)

const defaultFeeInBp = 1000

// oneEther is the price every fixture project charges.
var oneEther = sdk.Ether(1)

type contractTest struct {
	c       *contract.Contract
	state   *contract.MemState
	ledger  *sdk.MemLedger
	metrics *contract.Metrics
}

// setupContractTest deploys a fresh contract the way the node does: admin
// deploys, treasury gets the fee, everyone else holds 10 ether.
func setupContractTest(t *testing.T) *contractTest {
	t.Helper()
	state := contract.NewMemState()
	ledger := sdk.NewMemLedger(map[sdk.Address]*big.Int{
		signerAddress:   sdk.Ether(10),
		authorAddress:   sdk.Ether(10),
		outsiderAddress: sdk.Ether(10),
	})
	metrics := contract.NewMetrics(prometheus.NewRegistry())
	c, err := contract.New(state, ledger, contract.WithMetrics(metrics))
	require.NoError(t, err)

	require.NoError(t, c.Init(context.Background(), sdk.NewEnv(adminAddress, nil), contract.InitArgs{
		Name:           "Non-Fungible Code Test",
		Symbol:         "NFCT",
		BaseContentURI: "ipfs://",
		Treasury:       treasuryAddress,
		FeeInBp:        defaultFeeInBp,
	}))
	return &contractTest{c: c, state: state, ledger: ledger, metrics: metrics}
}

// projectArgs mirrors the fixture project: 1 ether, two editions, first token bundled.
func projectArgs() contract.CreateProjectArgs {
	return contract.CreateProjectArgs{
		Author:           authorAddress,
		ExternalURL:      "https://example.com",
		ContentID:        "PCID",
		Name:             "Name",
		Description:      "Description",
		License:          "NIFTY License",
		Price:            oneEther,
		MaxSupply:        2,
		InitialContentID: "CID0",
	}
}

// createProject runs the fixture creation as the author, paying one ether.
func (ct *contractTest) createProject(t *testing.T) uint64 {
	t.Helper()
	id, err := ct.c.CreateProject(context.Background(), sdk.NewEnv(authorAddress, oneEther), projectArgs())
	callContract(t, "createProject", true, err)
	return id
}

// mint calls Mint as signer for signer.
func (ct *contractTest) mint(t *testing.T, projectID uint64, contentID string, value *big.Int, expectedResult bool) (uint64, error) {
	t.Helper()
	id, err := ct.c.Mint(context.Background(), sdk.NewEnv(signerAddress, value), signerAddress, projectID, contentID)
	callContract(t, "mint", expectedResult, err)
	return id, err
}

// callContract asserts the outcome of a contract action and logs the revert symbol.
func callContract(t *testing.T, action string, expectedResult bool, err error) {
	t.Helper()
	if err != nil {
		t.Logf("%s reverted: %s (%v)", action, contract.Symbol(err), err)
	}
	if expectedResult {
		require.NoError(t, err, "Contract action %s failed", action)
	} else {
		require.Error(t, err, "Contract action %s did not fail (as expected)", action)
	}
}

// lastEvents returns the events appended since index from.
func (ct *contractTest) lastEvents(from int) []contract.Event {
	recs := ct.c.Events().Records(uint64(from))
	out := make([]contract.Event, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Event)
	}
	return out
}

func (ct *contractTest) balance(addr sdk.Address) *big.Int {
	return ct.ledger.BalanceOf(addr)
}

func assertWei(t *testing.T, want, got *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want.String(), got.String(), msgAndArgs...)
}

// diff returns after - before.
func diff(before, after *big.Int) *big.Int {
	return new(big.Int).Sub(after, before)
}
