package host

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitfsorg/ecopayout-go/contract"
)

// Invocation outcomes used as the "outcome" label.
const (
	OutcomeOK             = "ok"
	OutcomeUnauthorized   = "unauthorized"
	OutcomeRejected       = "rejected"
	OutcomeStorageError   = "storage_error"
	OutcomeInvalid        = "invalid"
	OutcomeNotImplemented = "not_implemented"
	OutcomeError          = "error"
)

// Metrics collects Prometheus metrics for an Instance.
type Metrics struct {
	invocations    *prometheus.CounterVec
	tokensReleased prometheus.Counter
	locked         prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecopayout",
				Name:      "invocations_total",
				Help:      "Total number of contract invocations.",
			},
			[]string{"operation", "outcome"},
		),
		tokensReleased: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ecopayout",
				Name:      "tokens_released_total",
				Help:      "Total number of tokens disbursed to the beneficiary.",
			},
		),
		locked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ecopayout",
				Name:      "locked",
				Help:      "1 while the contract is locked, 0 otherwise.",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.invocations, m.tokensReleased, m.locked)
	}
	return m
}

func (m *Metrics) observe(operation string, err error) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) committed(before, after *contract.State) {
	if m == nil {
		return
	}
	if after.IsLocked {
		m.locked.Set(1)
	} else {
		m.locked.Set(0)
	}
	var released int64
	if before != nil {
		released = before.ReleasedTokens
	}
	if delta := after.ReleasedTokens - released; delta > 0 {
		m.tokensReleased.Add(float64(delta))
	}
}

// outcome classifies err into a label value. ErrStorage is checked before
// ErrContract since it wraps it.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, contract.ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, contract.ErrStorage):
		return OutcomeStorageError
	case errors.Is(err, contract.ErrNotImplemented):
		return OutcomeNotImplemented
	case errors.Is(err, contract.ErrContract):
		return OutcomeRejected
	case errors.Is(err, ErrInvalidMsg), errors.Is(err, ErrAlreadyInitialized):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
