package contract

import (
	"errors"
	"fmt"
	"os"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// snapshotFormat versions the dump layout, not the storage schema.
const snapshotFormat = 1

// SaveFile dumps every key/value pair, hex encoded, into a JSON file. It is a
// debugging aid for local daemons, not a persistence layer.
func (m *MemState) SaveFile(path string) error {
	data, err := tinyjson.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	return nil
}

// LoadFile merges a snapshot written by SaveFile into m. A missing file is not
// an error, the state simply stays as it is.
func (m *MemState) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state snapshot: %w", err)
	}
	if err := tinyjson.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decode state snapshot %s: %w", path, err)
	}
	return nil
}

func (m *MemState) MarshalTinyJSON(w *jwriter.Writer) {
	keys := m.keys()
	w.RawString(`{"format":`)
	w.Int(snapshotFormat)
	w.RawString(`,"entries":{`)
	first := true
	for _, k := range keys {
		v := m.Get(k)
		if v == nil {
			continue
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		w.String(hexutil.Encode([]byte(k)))
		w.RawByte(':')
		w.String(hexutil.Encode([]byte(*v)))
	}
	w.RawString(`}}`)
}

func (m *MemState) UnmarshalTinyJSON(in *jlexer.Lexer) {
	in.Delim('{')
	for !in.IsDelim('}') {
		field := in.String()
		in.WantColon()
		switch field {
		case "format":
			if f := in.Int(); f != snapshotFormat {
				in.AddError(fmt.Errorf("unsupported snapshot format %d", f))
				return
			}
		case "entries":
			in.Delim('{')
			for !in.IsDelim('}') {
				rawKey := in.String()
				in.WantColon()
				rawVal := in.String()
				k, err := hexutil.Decode(rawKey)
				if err != nil {
					in.AddError(fmt.Errorf("snapshot key %q: %w", rawKey, err))
					return
				}
				v, err := hexutil.Decode(rawVal)
				if err != nil {
					in.AddError(fmt.Errorf("snapshot value of %q: %w", rawKey, err))
					return
				}
				m.Set(string(k), string(v))
				in.WantComma()
			}
			in.Delim('}')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
}
