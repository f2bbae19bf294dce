/*
github.com/tcrain/synodbench - Experimental project for measuring consensus decision latency.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package bench

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tcrain/synodbench/consensus/logging"
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

// Metrics tracks the progress of a sweep.
type Metrics struct {
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	repetition  prometheus.Gauge
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "synodbench",
			Name:      "runs_total",
			Help:      "Number of executions of the consensus program by result",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "synodbench",
			Name:      "run_duration_seconds",
			Help:      "Duration of one execution of the consensus program",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		repetition: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "synodbench",
			Name:      "repetition",
			Help:      "Index of the repetition being run",
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.runDuration, m.repetition} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeRun(failed bool, seconds float64) {
	if m == nil {
		return
	}
	if failed {
		m.runs.WithLabelValues(resultFailed).Inc()
	} else {
		m.runs.WithLabelValues(resultOK).Inc()
	}
	m.runDuration.Observe(seconds)
}

func (m *Metrics) setRepetition(rep int) {
	if m == nil {
		return
	}
	m.repetition.Set(float64(rep))
}

// ServeMetrics exposes the registered metrics on address/metrics in the background.
// It returns the server so it can be shut down.
func ServeMetrics(address string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:    address,
		Handler: mux,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Errorf("Metrics server error: %v", err)
		}
	}()
	logging.Info("Serving metrics at ", address)
	return server
}
