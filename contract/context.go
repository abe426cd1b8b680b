package contract

import (
	"context"
	"time"

	"nfc_contract/sdk"
)

// settlementKey marks contexts handed to the ledger during a payment.
type settlementKey struct{}

func withSettlement(ctx context.Context) context.Context {
	return context.WithValue(ctx, settlementKey{}, true)
}

// inSettlement reports whether ctx belongs to code running inside a payment,
// e.g. a recipient hook trying to call back into the contract.
func inSettlement(ctx context.Context) bool {
	v, _ := ctx.Value(settlementKey{}).(bool)
	return v
}

// reentrant reports whether a payment is in progress. Hooks may call back with
// any context, so the contract-wide flag decides and the context marker only
// catches callers that kept the one they were handed.
func (c *Contract) reentrant(ctx context.Context) bool {
	return c.settling.Load() || inSettlement(ctx)
}

// txn is the scope of one mutating operation: the caller env, a write overlay on
// top of the contract state and the events to publish once everything succeeded.
type txn struct {
	ctx     context.Context
	env     sdk.Env
	st      *overlay
	cfg     *GlobalConfig
	events  []Event
	settled *settlement
}

func (t *txn) emit(e Event) {
	t.events = append(t.events, e)
}

// config loads the contract config once per operation.
func (t *txn) config() (*GlobalConfig, error) {
	if t.cfg != nil {
		return t.cfg, nil
	}
	cfg, err := requireInitialized(t.st)
	if err != nil {
		return nil, err
	}
	t.cfg = cfg
	return cfg, nil
}

// exec runs fn under the contract lock against a fresh overlay. On success the
// overlay is committed and events appended; on failure nothing is kept.
func (c *Contract) exec(ctx context.Context, op string, env sdk.Env, fn func(t *txn) error) error {
	start := time.Now()
	defer c.metrics.ObserveOp(op, start)

	if c.reentrant(ctx) {
		err := revert(ErrReentrantCall, "%s", op)
		c.rejected(op, env, err)
		return err
	}
	if env.Value == nil {
		env.Value = sdk.CopyWei(nil)
	}

	c.mu.Lock()
	t := &txn{ctx: ctx, env: env, st: newOverlay(c.state)}
	if err := fn(t); err != nil {
		c.mu.Unlock()
		err = asRevert(err)
		c.rejected(op, env, err)
		return err
	}
	t.st.commit()
	recs := c.events.append(env.TxID, t.events)
	c.mu.Unlock()

	c.events.notify(recs)
	for _, rec := range recs {
		c.log.Trace(rec.Event.line())
		switch rec.Event.(type) {
		case ProjectCreated:
			c.metrics.ProjectsCreated.Inc()
		case Minted:
			c.metrics.TokensMinted.Inc()
		}
	}
	if t.settled != nil {
		c.metrics.AddSettlement(t.settled)
	}
	c.log.Info("Operation committed", "op", op, "tx", env.TxID, "from", env.Sender, "events", len(recs))
	return nil
}

// view runs a read-only fn against the committed state.
func (c *Contract) view(ctx context.Context, fn func(st State, cfg *GlobalConfig) error) error {
	if c.reentrant(ctx) {
		return revert(ErrReentrantCall, "view")
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	cfg, err := requireInitialized(c.state)
	if err != nil {
		return asRevert(err)
	}
	return asRevert(fn(c.state, cfg))
}

func (c *Contract) rejected(op string, env sdk.Env, err error) {
	c.metrics.IncrementRejected(op, err)
	c.log.Debug("Operation rejected", "op", op, "tx", env.TxID, "from", env.Sender, "reason", Symbol(err), "err", err)
}
