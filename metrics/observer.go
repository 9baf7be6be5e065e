package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer registers a set of gauges reflecting one channel's live state.
// It holds no state of its own beyond the registered collectors; every read
// goes straight through to the closures supplied at construction.
type Observer struct {
	readable prometheus.GaugeFunc
	writable prometheus.GaugeFunc
	waiting  prometheus.GaugeFunc
}

// Config supplies the read-only accessors Observer exposes as gauges.
// Waiting may be nil for channels with no wakeup layer, in which case the
// waiting gauge always reports 0.
type Config struct {
	Registerer prometheus.Registerer
	Subsystem  string
	Channel    string
	Readable   func() uint64
	Writable   func() uint64
	Waiting    func() bool
}

// NewObserver registers cfg's gauges under the "shmring" namespace and
// returns the Observer holding them. Registration happens immediately, the
// way promauto.NewGaugeFunc always does. Observer does not expose the
// collectors it registered, so they cannot be unregistered through it.
func NewObserver(cfg Config) *Observer {
	labels := prometheus.Labels{"channel": cfg.Channel}
	factory := promauto.With(cfg.Registerer)

	o := &Observer{}

	if cfg.Readable != nil {
		o.readable = factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "shmring",
			Subsystem:   cfg.Subsystem,
			Name:        "readable_elements",
			Help:        "Number of elements currently available to read.",
			ConstLabels: labels,
		}, func() float64 { return float64(cfg.Readable()) })
	}

	if cfg.Writable != nil {
		o.writable = factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "shmring",
			Subsystem:   cfg.Subsystem,
			Name:        "writable_elements",
			Help:        "Number of elements currently free to write.",
			ConstLabels: labels,
		}, func() float64 { return float64(cfg.Writable()) })
	}

	waitingFn := cfg.Waiting
	if waitingFn == nil {
		waitingFn = func() bool { return false }
	}
	o.waiting = factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "shmring",
		Subsystem:   cfg.Subsystem,
		Name:        "waiting",
		Help:        "1 if this endpoint is currently blocked in Wait, 0 otherwise.",
		ConstLabels: labels,
	}, func() float64 {
		if waitingFn() {
			return 1
		}
		return 0
	})

	return o
}
