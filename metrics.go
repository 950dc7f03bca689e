// SPDX-License-Identifier: EPL-2.0

package foxaudio

import (
	"sync"

	"github.com/ik5/foxaudio/native"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports the state of one or more Managers to Prometheus. A nil
// *Metrics records nothing.
type Metrics struct {
	mu       sync.Mutex
	managers []*Manager

	liveHandles  *prometheus.Desc
	pinnedBytes  prometheus.Gauge
	updatesTotal prometheus.Counter
	errorsTotal  *prometheus.CounterVec
}

var _ prometheus.Collector = (*Metrics)(nil)

// NewMetrics creates the collector and registers it with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		liveHandles: prometheus.NewDesc(
			"foxaudio_live_handles",
			"Number of live wrapper handles per registry",
			[]string{"kind"}, nil,
		),
		pinnedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "foxaudio_pinned_bytes",
			Help: "Bytes of stream data pinned for the native engine",
		}),
		updatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foxaudio_updates_total",
			Help: "Total number of engine updates",
		}),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foxaudio_native_errors_total",
				Help: "Total number of failed native calls by result",
			},
			[]string{"result"},
		),
	}

	if reg != nil {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.liveHandles
	m.pinnedBytes.Describe(ch)
	m.updatesTotal.Describe(ch)
	m.errorsTotal.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	live := map[string]int{}

	m.mu.Lock()
	for _, mgr := range m.managers {
		for kind, n := range mgr.liveHandles() {
			live[kind] += n
		}
	}
	m.mu.Unlock()

	for kind, n := range live {
		ch <- prometheus.MustNewConstMetric(m.liveHandles, prometheus.GaugeValue, float64(n), kind)
	}
	m.pinnedBytes.Collect(ch)
	m.updatesTotal.Collect(ch)
	m.errorsTotal.Collect(ch)
}

func (m *Metrics) watch(mgr *Manager) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.managers = append(m.managers, mgr)
}

func (m *Metrics) update() {
	if m != nil {
		m.updatesTotal.Inc()
	}
}

func (m *Metrics) pinned(delta int) {
	if m != nil {
		m.pinnedBytes.Add(float64(delta))
	}
}

func (m *Metrics) nativeError(res native.Result) {
	if m != nil {
		m.errorsTotal.WithLabelValues(res.Name()).Inc()
	}
}

// liveHandles reports the size of every registry.
func (m *Manager) liveHandles() map[string]int {
	return map[string]int{
		"sound":             m.sounds.Len(),
		"channel_group":     m.groups.Len(),
		"bank":              m.banks.Len(),
		"event_description": m.events.Len(),
		"event_instance":    m.instances.Len(),
	}
}
