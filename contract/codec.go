package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/big"

	"nfc_contract/sdk"
)

var errUnexpectedEOF = errors.New("unexpected EOF")

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress dumps the raw 20 bytes, addresses have a fixed width.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.buf.Write(a.Bytes())
}

// writeBigInt stores a non-negative amount as length-prefixed big endian bytes.
func (w *binWriter) writeBigInt(v *big.Int) {
	if v == nil {
		w.writeVarUint(0)
		return
	}
	b := v.Bytes()
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errUnexpectedEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readBytes slices out the next l bytes.
func (r *binReader) readBytes(l uint64) ([]byte, error) {
	if uint64(len(r.data)-r.pos) < l {
		return nil, errUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+int(l)]
	r.pos += int(l)
	return b, nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(l)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	b, err := r.readBytes(uint64(len(sdk.ZeroAddress)))
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return sdk.Address(b), nil
}

func (r *binReader) readBigInt() (*big.Int, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	b, err := r.readBytes(l)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// ------------------------------------------------------------------
// Records
// ------------------------------------------------------------------

// EncodeProject serializes the immutable part of a project. Minted and Paused
// live under the status key, see EncodeProjectStatus.
// Example payload: EncodeProject(&Project{ID: 0, Name: "genesis", Price: sdk.Ether(1), MaxSupply: 2})
func EncodeProject(prj *Project) []byte {
	w := newWriter()
	w.writeUint64(prj.ID)
	w.writeAddress(prj.Author)
	w.writeString(prj.ExternalURL)
	w.writeString(prj.ContentID)
	w.writeString(prj.Name)
	w.writeString(prj.Description)
	w.writeString(prj.License)
	w.writeBigInt(prj.Price)
	w.writeUint64(prj.MaxSupply)
	return w.bytes()
}

// DecodeProject lets off-chain tools verify stored projects without reimplementing codec.
func DecodeProject(data []byte) (*Project, error) {
	r := newReader(data)
	prj := &Project{}
	var err error
	if prj.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if prj.Author, err = r.readAddress(); err != nil {
		return nil, err
	}
	if prj.ExternalURL, err = r.readString(); err != nil {
		return nil, err
	}
	if prj.ContentID, err = r.readString(); err != nil {
		return nil, err
	}
	if prj.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if prj.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if prj.License, err = r.readString(); err != nil {
		return nil, err
	}
	if prj.Price, err = r.readBigInt(); err != nil {
		return nil, err
	}
	if prj.MaxSupply, err = r.readUint64(); err != nil {
		return nil, err
	}
	return prj, nil
}

// EncodeProjectStatus packs the minted counter and the pause flag.
func EncodeProjectStatus(st projectStatus) []byte {
	w := newWriter()
	w.writeVarUint(st.Minted)
	w.writeBool(st.Paused)
	return w.bytes()
}

func DecodeProjectStatus(data []byte) (projectStatus, error) {
	r := newReader(data)
	var st projectStatus
	var err error
	if st.Minted, err = r.readVarUint(); err != nil {
		return st, err
	}
	if st.Paused, err = r.readBool(); err != nil {
		return st, err
	}
	return st, nil
}

// EncodeToken serializes a minted token.
// Example payload: EncodeToken(&Token{ID: 1, ProjectID: 0, ContentID: "CID1"})
func EncodeToken(tok *Token) []byte {
	w := newWriter()
	w.writeUint64(tok.ID)
	w.writeUint64(tok.ProjectID)
	w.writeAddress(tok.Owner)
	w.writeString(tok.ContentID)
	return w.bytes()
}

func DecodeToken(data []byte) (*Token, error) {
	r := newReader(data)
	tok := &Token{}
	var err error
	if tok.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if tok.ProjectID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if tok.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if tok.ContentID, err = r.readString(); err != nil {
		return nil, err
	}
	return tok, nil
}

// EncodeContractConfig serializes the singleton config.
func EncodeContractConfig(cfg *GlobalConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeAddress(cfg.Treasury)
	w.writeAddress(cfg.Escrow)
	w.writeVarUint(cfg.FeeInBp)
	w.writeBool(cfg.Paused)
	w.writeString(cfg.Name)
	w.writeString(cfg.Symbol)
	w.writeString(cfg.BaseContentURI)
	return w.bytes()
}

func DecodeContractConfig(data []byte) (*GlobalConfig, error) {
	r := newReader(data)
	cfg := &GlobalConfig{}
	var err error
	if cfg.Admin, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Treasury, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Escrow, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.FeeInBp, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if cfg.Paused, err = r.readBool(); err != nil {
		return nil, err
	}
	if cfg.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if cfg.Symbol, err = r.readString(); err != nil {
		return nil, err
	}
	if cfg.BaseContentURI, err = r.readString(); err != nil {
		return nil, err
	}
	return cfg, nil
}
