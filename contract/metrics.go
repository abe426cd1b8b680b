package contract

import (
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for one contract instance.
type Metrics struct {
	ProjectsCreated prometheus.Counter
	TokensMinted    prometheus.Counter
	FeesWei         prometheus.Counter
	AuthorWei       prometheus.Counter
	RefundedWei     prometheus.Counter
	Rejected        *prometheus.CounterVec
	OpDuration      *prometheus.HistogramVec
}

// NewMetrics registers the contract metrics on reg. Each contract needs its own
// registry, or the second registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ProjectsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "nfc_projects_created_total",
			Help: "Total number of projects created",
		}),
		TokensMinted: f.NewCounter(prometheus.CounterOpts{
			Name: "nfc_tokens_minted_total",
			Help: "Total number of tokens minted",
		}),
		FeesWei: f.NewCounter(prometheus.CounterOpts{
			Name: "nfc_fees_wei_total",
			Help: "Platform fees paid to the treasury, in wei",
		}),
		AuthorWei: f.NewCounter(prometheus.CounterOpts{
			Name: "nfc_author_payouts_wei_total",
			Help: "Mint proceeds paid to authors, in wei",
		}),
		RefundedWei: f.NewCounter(prometheus.CounterOpts{
			Name: "nfc_refunds_wei_total",
			Help: "Overpayment returned to payers, in wei",
		}),
		Rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nfc_rejected_total",
			Help: "Rejected operations by revert symbol",
		}, []string{"op", "reason"}),
		OpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nfc_op_duration_seconds",
			Help:    "Duration of contract operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"op"}),
	}
}

// ObserveOp records the duration of op. Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOp(op string, start time.Time) {
	m.OpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// IncrementRejected counts a failed operation.
func (m *Metrics) IncrementRejected(op string, err error) {
	m.Rejected.WithLabelValues(op, Symbol(err)).Inc()
}

// AddSettlement records the value moved by a mint.
func (m *Metrics) AddSettlement(s *settlement) {
	m.FeesWei.Add(weiFloat(s.fee))
	m.AuthorWei.Add(weiFloat(s.author))
	m.RefundedWei.Add(weiFloat(s.refund))
}

// weiFloat loses precision above 2^53 wei, acceptable for dashboards.
func weiFloat(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
