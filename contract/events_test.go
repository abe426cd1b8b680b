package contract_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

func TestEventTopics(t *testing.T) {
	events := []contract.Event{
		contract.ProjectCreated{},
		contract.ProjectPaused{},
		contract.ProjectUnpaused{},
		contract.Minted{},
		contract.Paused{},
		contract.Unpaused{},
		contract.TreasuryUpdated{},
		contract.FeeUpdated{},
		contract.AdminTransferred{},
	}
	seen := map[string]bool{}
	for _, e := range events {
		assert.Equal(t, crypto.Keccak256Hash([]byte(e.Signature())), contract.Topic(e), e.Name())
		assert.False(t, seen[e.Signature()], "duplicate signature %s", e.Signature())
		seen[e.Signature()] = true
	}
	assert.Equal(t, "Minted(address,uint256)", contract.Minted{}.Signature())
}

func TestRecordJSON(t *testing.T) {
	ct := setupContractTest(t)
	ct.createProject(t)

	recs := ct.c.Events().Records(1)
	require.Len(t, recs, 2)
	raw, err := json.Marshal(recs[1])
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(2), got["index"])
	assert.Equal(t, "Minted", got["event"])
	assert.Equal(t, contract.Topic(contract.Minted{}).Hex(), got["topic"])
	assert.Equal(t, map[string]interface{}{
		"recipient": authorAddress.Hex(),
		"tokenId":   float64(0),
	}, got["args"])
	assert.Equal(t, recs[0].TxID, recs[1].TxID, "bundled create shares one transaction")
}

func TestEventSubscription(t *testing.T) {
	ct := setupContractTest(t)
	ch := make(chan contract.Record, 8)
	sub := ct.c.Events().Subscribe(ch)
	defer sub.Unsubscribe()

	ct.createProject(t)

	var got []contract.Event
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case rec := <-ch:
			got = append(got, rec.Event)
		case <-timeout:
			t.Fatalf("received %d of 2 events", len(got))
		}
	}
	assert.Equal(t, []contract.Event{
		contract.ProjectCreated{Author: authorAddress, ProjectID: 0},
		contract.Minted{Recipient: authorAddress, TokenID: 0},
	}, got)
}

func TestFailedOperationsEmitNothing(t *testing.T) {
	ct := setupContractTest(t)
	before := ct.c.Events().Len()
	ctx := context.Background()

	_ = ct.c.Pause(ctx, sdk.NewEnv(signerAddress, nil))
	_, _ = ct.c.Mint(ctx, sdk.NewEnv(signerAddress, oneEther), signerAddress, 0, "CID1")
	_ = ct.c.SetFeeInBp(ctx, sdk.NewEnv(adminAddress, nil), 10001)

	assert.Equal(t, before, ct.c.Events().Len())
	assert.Empty(t, ct.c.Events().Records(uint64(before)))
}

func TestMetrics(t *testing.T) {
	ct := setupContractTest(t)
	ct.createProject(t)
	ct.mint(t, 0, "CID1", oneEther, true)
	ct.mint(t, 0, "CID2", oneEther, false)

	assert.Equal(t, float64(1), testutil.ToFloat64(ct.metrics.ProjectsCreated))
	assert.Equal(t, float64(2), testutil.ToFloat64(ct.metrics.TokensMinted))
	assert.Equal(t, float64(2e17), testutil.ToFloat64(ct.metrics.FeesWei))
	assert.Equal(t, float64(1), testutil.ToFloat64(ct.metrics.Rejected.WithLabelValues("mint", "edition_limit")))
}
