package contract

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"

	"nfc_contract/sdk"
)

// Contract is the registry and minting engine. All state lives in the injected
// State, all value in the injected Ledger. A Contract is safe for concurrent use;
// operations are serialized.
type Contract struct {
	mu       sync.RWMutex
	settling atomic.Bool // set while the ledger runs a payment, mu is held
	state    State
	ledger   sdk.Ledger
	events   *EventLog
	log      log.Logger
	metrics  *Metrics
}

// Option customizes a Contract.
type Option func(*Contract)

// WithLogger sets the logger, the default is log.New("module", "nfc").
func WithLogger(l log.Logger) Option {
	return func(c *Contract) { c.log = l }
}

// WithMetrics sets the metrics sink, the default registers on a private registry.
func WithMetrics(m *Metrics) Option {
	return func(c *Contract) { c.metrics = m }
}

// WithEventLog shares an event log, mostly useful for tests.
func WithEventLog(l *EventLog) Option {
	return func(c *Contract) { c.events = l }
}

// New wires a contract over state and ledger and brings the stored layout up to
// SchemaVersion.
func New(state State, ledger sdk.Ledger, opts ...Option) (*Contract, error) {
	if state == nil || ledger == nil {
		return nil, fmt.Errorf("contract: state and ledger are required")
	}
	c := &Contract{state: state, ledger: ledger}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.New("module", "nfc")
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(prometheus.NewRegistry())
	}
	if c.events == nil {
		c.events = NewEventLog()
	}
	if err := c.migrate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Events exposes the contract's event log.
func (c *Contract) Events() *EventLog { return c.events }

// Ledger exposes the value ledger the contract settles against.
func (c *Contract) Ledger() sdk.Ledger { return c.ledger }

// Initialized reports whether Init has run.
func (c *Contract) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return isContractInitialized(c.state)
}

// Init sets up the singleton configuration. The sender becomes admin.
// Example payload: Init(ctx, sdk.NewEnv(deployer, nil), InitArgs{Name: "Non-Fungible Code", Symbol: "NFC", Treasury: treasury, FeeInBp: 500})
func (c *Contract) Init(ctx context.Context, env sdk.Env, args InitArgs) error {
	return c.exec(ctx, "init", env, func(t *txn) error {
		if isContractInitialized(t.st) {
			return revert(ErrAlreadyInitialized, "")
		}
		if err := requireNoPayment(t.env); err != nil {
			return err
		}
		if args.FeeInBp >= BpsBase {
			return revert(ErrInvalidFee, "%d bp", args.FeeInBp)
		}
		if sdk.IsZero(args.Treasury) {
			return revert(ErrInvalidAddress, "treasury")
		}
		if sdk.IsZero(env.Sender) {
			return revert(ErrInvalidAddress, "admin")
		}
		cfg := &GlobalConfig{
			Admin:          env.Sender,
			Treasury:       args.Treasury,
			Escrow:         sdk.ContractAddress(env.Sender, 0),
			FeeInBp:        args.FeeInBp,
			Name:           args.Name,
			Symbol:         args.Symbol,
			BaseContentURI: args.BaseContentURI,
		}
		saveContractConfig(t.st, cfg)
		saveSchema(t.st, SchemaVersion)
		t.emit(AdminTransferred{Previous: sdk.ZeroAddress, Admin: env.Sender})
		return nil
	})
}
