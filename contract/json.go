package contract

import (
	"fmt"
	"math/big"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"nfc_contract/sdk"
)

// JSON views. Addresses are checksummed hex, wei amounts decimal strings so
// they survive javascript clients.

func writeWei(w *jwriter.Writer, v *big.Int) {
	w.String(sdk.CopyWei(v).String())
}

func readAddress(in *jlexer.Lexer) sdk.Address {
	raw := in.String()
	a, err := sdk.ParseAddress(raw)
	if err != nil {
		in.AddError(err)
	}
	return a
}

func readWei(in *jlexer.Lexer) *big.Int {
	raw := in.String()
	v, err := sdk.ParseWei(raw)
	if err != nil {
		in.AddError(fmt.Errorf("amount %q: %w", raw, err))
	}
	return v
}

// ----- Project -----

func (p Project) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"author":`)
	w.String(p.Author.Hex())
	w.RawString(`,"externalUrl":`)
	w.String(p.ExternalURL)
	w.RawString(`,"contentId":`)
	w.String(p.ContentID)
	w.RawString(`,"name":`)
	w.String(p.Name)
	w.RawString(`,"description":`)
	w.String(p.Description)
	w.RawString(`,"license":`)
	w.String(p.License)
	w.RawString(`,"price":`)
	writeWei(w, p.Price)
	w.RawString(`,"maxSupply":`)
	w.Uint64(p.MaxSupply)
	w.RawString(`,"minted":`)
	w.Uint64(p.Minted)
	w.RawString(`,"paused":`)
	w.Bool(p.Paused)
	w.RawByte('}')
}

func (p *Project) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.String()
		in.WantColon()
		switch field {
		case "id":
			p.ID = in.Uint64()
		case "author":
			p.Author = readAddress(in)
		case "externalUrl":
			p.ExternalURL = in.String()
		case "contentId":
			p.ContentID = in.String()
		case "name":
			p.Name = in.String()
		case "description":
			p.Description = in.String()
		case "license":
			p.License = in.String()
		case "price":
			p.Price = readWei(in)
		case "maxSupply":
			p.MaxSupply = in.Uint64()
		case "minted":
			p.Minted = in.Uint64()
		case "paused":
			p.Paused = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (p Project) MarshalJSON() ([]byte, error)   { return tinyjson.Marshal(p) }
func (p *Project) UnmarshalJSON(b []byte) error { return tinyjson.Unmarshal(b, p) }

// ----- Token -----

func (t Token) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(t.ID)
	w.RawString(`,"projectId":`)
	w.Uint64(t.ProjectID)
	w.RawString(`,"owner":`)
	w.String(t.Owner.Hex())
	w.RawString(`,"contentId":`)
	w.String(t.ContentID)
	w.RawByte('}')
}

func (t *Token) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.String()
		in.WantColon()
		switch field {
		case "id":
			t.ID = in.Uint64()
		case "projectId":
			t.ProjectID = in.Uint64()
		case "owner":
			t.Owner = readAddress(in)
		case "contentId":
			t.ContentID = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (t Token) MarshalJSON() ([]byte, error)   { return tinyjson.Marshal(t) }
func (t *Token) UnmarshalJSON(b []byte) error { return tinyjson.Unmarshal(b, t) }

// ----- GlobalConfig -----

func (c GlobalConfig) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"admin":`)
	w.String(c.Admin.Hex())
	w.RawString(`,"treasury":`)
	w.String(c.Treasury.Hex())
	w.RawString(`,"escrow":`)
	w.String(c.Escrow.Hex())
	w.RawString(`,"feeInBp":`)
	w.Uint64(c.FeeInBp)
	w.RawString(`,"paused":`)
	w.Bool(c.Paused)
	w.RawString(`,"name":`)
	w.String(c.Name)
	w.RawString(`,"symbol":`)
	w.String(c.Symbol)
	w.RawString(`,"baseContentUri":`)
	w.String(c.BaseContentURI)
	w.RawByte('}')
}

func (c *GlobalConfig) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.String()
		in.WantColon()
		switch field {
		case "admin":
			c.Admin = readAddress(in)
		case "treasury":
			c.Treasury = readAddress(in)
		case "escrow":
			c.Escrow = readAddress(in)
		case "feeInBp":
			c.FeeInBp = in.Uint64()
		case "paused":
			c.Paused = in.Bool()
		case "name":
			c.Name = in.String()
		case "symbol":
			c.Symbol = in.String()
		case "baseContentUri":
			c.BaseContentURI = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (c GlobalConfig) MarshalJSON() ([]byte, error)   { return tinyjson.Marshal(c) }
func (c *GlobalConfig) UnmarshalJSON(b []byte) error { return tinyjson.Unmarshal(b, c) }

// ----- Quote -----

func (q Quote) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"price":`)
	writeWei(w, q.Price)
	w.RawString(`,"fee":`)
	writeWei(w, q.Fee)
	w.RawString(`,"authorShare":`)
	writeWei(w, q.AuthorShare)
	w.RawByte('}')
}

func (q *Quote) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.String()
		in.WantColon()
		switch field {
		case "price":
			q.Price = readWei(in)
		case "fee":
			q.Fee = readWei(in)
		case "authorShare":
			q.AuthorShare = readWei(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (q Quote) MarshalJSON() ([]byte, error)   { return tinyjson.Marshal(q) }
func (q *Quote) UnmarshalJSON(b []byte) error { return tinyjson.Unmarshal(b, q) }
