package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfc_contract/sdk"
)

func TestProjectJSONView(t *testing.T) {
	prj := Project{
		ID:        1,
		Author:    sdk.MustParseAddress("0x00000000000000000000000000000000000000d4"),
		ContentID: "PCID",
		Name:      "quoted \"name\"",
		Price:     sdk.Ether(2),
		MaxSupply: 10,
		Minted:    4,
		Paused:    true,
	}
	raw, err := json.Marshal(prj)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":"2000000000000000000"`)
	assert.Contains(t, string(raw), `"author":"`+prj.Author.Hex()+`"`)

	var back Project
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, prj.Name, back.Name)
	assert.Equal(t, prj.Author, back.Author)
	assert.Equal(t, 0, prj.Price.Cmp(back.Price))
	assert.Equal(t, prj.Minted, back.Minted)
	assert.True(t, back.Paused)
}

func TestQuoteJSONAcceptsHexAmounts(t *testing.T) {
	var q Quote
	require.NoError(t, json.Unmarshal([]byte(`{"price":"0xde0b6b3a7640000","fee":"100000000000000000","authorShare":"900000000000000000","extra":[1,2]}`), &q))
	assert.Equal(t, sdk.Ether(1).String(), q.Price.String())
	assert.Equal(t, "100000000000000000", q.Fee.String())

	assert.Error(t, json.Unmarshal([]byte(`{"price":"-5"}`), &q))
}

func TestConfigJSONRejectsBadAddress(t *testing.T) {
	var cfg GlobalConfig
	assert.Error(t, json.Unmarshal([]byte(`{"admin":"0x1234"}`), &cfg))
}
