package contract

import (
	"fmt"
	"sync"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"

	"nfc_contract/sdk"
)

// Event is one entry of the append-only contract log.
type Event interface {
	// Name is the bare event name, e.g. "Minted".
	Name() string
	// Signature is the canonical solidity-style signature the topic hashes.
	Signature() string
	line() string
	writeArgs(w *jwriter.Writer)
}

// Topic is keccak256 of the event signature.
func Topic(e Event) common.Hash {
	return crypto.Keccak256Hash([]byte(e.Signature()))
}

// ----- Project events -----

type ProjectCreated struct {
	Author    sdk.Address
	ProjectID uint64
}

func (ProjectCreated) Name() string      { return "ProjectCreated" }
func (ProjectCreated) Signature() string { return "ProjectCreated(address,uint256)" }

// line keeps the short pc ping explorers already scrape.
func (e ProjectCreated) line() string {
	return fmt.Sprintf("pc|id:%d|by:%s", e.ProjectID, e.Author.Hex())
}

func (e ProjectCreated) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "author", e.Author, true)
	writeUintField(w, "projectId", e.ProjectID, false)
}

type ProjectPaused struct {
	Author    sdk.Address
	ProjectID uint64
}

func (ProjectPaused) Name() string      { return "ProjectPaused" }
func (ProjectPaused) Signature() string { return "ProjectPaused(address,uint256)" }

func (e ProjectPaused) line() string {
	return fmt.Sprintf("pp|id:%d|by:%s", e.ProjectID, e.Author.Hex())
}

func (e ProjectPaused) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "author", e.Author, true)
	writeUintField(w, "projectId", e.ProjectID, false)
}

type ProjectUnpaused struct {
	Author    sdk.Address
	ProjectID uint64
}

func (ProjectUnpaused) Name() string      { return "ProjectUnpaused" }
func (ProjectUnpaused) Signature() string { return "ProjectUnpaused(address,uint256)" }

func (e ProjectUnpaused) line() string {
	return fmt.Sprintf("pu|id:%d|by:%s", e.ProjectID, e.Author.Hex())
}

func (e ProjectUnpaused) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "author", e.Author, true)
	writeUintField(w, "projectId", e.ProjectID, false)
}

// ----- Token events -----

type Minted struct {
	Recipient sdk.Address
	TokenID   uint64
}

func (Minted) Name() string      { return "Minted" }
func (Minted) Signature() string { return "Minted(address,uint256)" }

func (e Minted) line() string {
	return fmt.Sprintf("mc|id:%d|to:%s", e.TokenID, e.Recipient.Hex())
}

func (e Minted) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "recipient", e.Recipient, true)
	writeUintField(w, "tokenId", e.TokenID, false)
}

// ----- Admin events -----

type Paused struct {
	Admin sdk.Address
}

func (Paused) Name() string      { return "Paused" }
func (Paused) Signature() string { return "Paused(address)" }

func (e Paused) line() string { return "gp|by:" + e.Admin.Hex() }

func (e Paused) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "admin", e.Admin, true)
}

type Unpaused struct {
	Admin sdk.Address
}

func (Unpaused) Name() string      { return "Unpaused" }
func (Unpaused) Signature() string { return "Unpaused(address)" }

func (e Unpaused) line() string { return "gu|by:" + e.Admin.Hex() }

func (e Unpaused) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "admin", e.Admin, true)
}

type TreasuryUpdated struct {
	Admin    sdk.Address
	Treasury sdk.Address
}

func (TreasuryUpdated) Name() string      { return "TreasuryUpdated" }
func (TreasuryUpdated) Signature() string { return "TreasuryUpdated(address,address)" }

func (e TreasuryUpdated) line() string {
	return fmt.Sprintf("tu|by:%s|to:%s", e.Admin.Hex(), e.Treasury.Hex())
}

func (e TreasuryUpdated) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "admin", e.Admin, true)
	writeAddressField(w, "treasury", e.Treasury, false)
}

type FeeUpdated struct {
	Admin   sdk.Address
	FeeInBp uint64
}

func (FeeUpdated) Name() string      { return "FeeUpdated" }
func (FeeUpdated) Signature() string { return "FeeUpdated(address,uint256)" }

func (e FeeUpdated) line() string {
	return fmt.Sprintf("fu|by:%s|bp:%d", e.Admin.Hex(), e.FeeInBp)
}

func (e FeeUpdated) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "admin", e.Admin, true)
	writeUintField(w, "feeInBp", e.FeeInBp, false)
}

type AdminTransferred struct {
	Previous sdk.Address
	Admin    sdk.Address
}

func (AdminTransferred) Name() string      { return "AdminTransferred" }
func (AdminTransferred) Signature() string { return "AdminTransferred(address,address)" }

func (e AdminTransferred) line() string {
	return fmt.Sprintf("at|from:%s|to:%s", e.Previous.Hex(), e.Admin.Hex())
}

func (e AdminTransferred) writeArgs(w *jwriter.Writer) {
	writeAddressField(w, "previous", e.Previous, true)
	writeAddressField(w, "admin", e.Admin, false)
}

func writeAddressField(w *jwriter.Writer, name string, a sdk.Address, first bool) {
	if !first {
		w.RawByte(',')
	}
	w.String(name)
	w.RawByte(':')
	w.String(a.Hex())
}

func writeUintField(w *jwriter.Writer, name string, v uint64, first bool) {
	if !first {
		w.RawByte(',')
	}
	w.String(name)
	w.RawByte(':')
	w.Uint64(v)
}

// ----- Log -----

// Record is an event as stored in the log.
type Record struct {
	Index uint64
	TxID  string
	Topic common.Hash
	Event Event
}

func (r Record) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"index":`)
	w.Uint64(r.Index)
	w.RawString(`,"txId":`)
	w.String(r.TxID)
	w.RawString(`,"topic":`)
	w.String(r.Topic.Hex())
	w.RawString(`,"event":`)
	w.String(r.Event.Name())
	w.RawString(`,"args":{`)
	r.Event.writeArgs(w)
	w.RawString(`}}`)
}

func (r Record) MarshalJSON() ([]byte, error) {
	return tinyjson.Marshal(r)
}

// EventLog is the append-only event sink of a contract. Appends happen while the
// contract holds its lock, so log order equals commit order. Subscribers are
// notified afterwards.
type EventLog struct {
	mu      sync.RWMutex
	records []Record
	feed    event.Feed
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

// Len returns the number of records.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Records returns a copy of the records starting at index from.
func (l *EventLog) Records(from uint64) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if from >= uint64(len(l.records)) {
		return []Record{}
	}
	out := make([]Record, len(l.records)-int(from))
	copy(out, l.records[from:])
	return out
}

// Subscribe delivers every record appended from now on to ch.
func (l *EventLog) Subscribe(ch chan<- Record) event.Subscription {
	return l.feed.Subscribe(ch)
}

func (l *EventLog) append(txID string, evs []Event) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, 0, len(evs))
	for _, e := range evs {
		rec := Record{
			Index: uint64(len(l.records)),
			TxID:  txID,
			Topic: Topic(e),
			Event: e,
		}
		l.records = append(l.records, rec)
		out = append(out, rec)
	}
	return out
}

func (l *EventLog) notify(recs []Record) {
	for _, rec := range recs {
		l.feed.Send(rec)
	}
}
