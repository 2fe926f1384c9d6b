// Package metrics exposes Prometheus collectors for league activity.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ringside"

// Metrics counts league events. It satisfies core.Observer.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	registry        *prometheus.Registry
	commands        *prometheus.CounterVec
	currency        *prometheus.CounterVec
	matches         *prometheus.CounterVec
	upgradeSpend    *prometheus.CounterVec
	inactiveFlagged *prometheus.CounterVec
	inactiveWarned  *prometheus.CounterVec
	jobRuns       *prometheus.CounterVec
	jobDuration   prometheus.Histogram
}

// New builds the collectors on a fresh registry together with the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "Slash commands handled, by command and outcome.",
		}, []string{"command", "status"}),
		currency: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "economy",
			Name:      "currency_awarded_total",
			Help:      "Currency paid out from chat activity and daily rewards.",
		}, []string{"guild"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "league",
			Name:      "matches_recorded_total",
			Help:      "Matches recorded, split by whether a title changed hands.",
		}, []string{"guild", "title_change"}),
		upgradeSpend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "economy",
			Name:      "upgrade_spend_total",
			Help:      "Currency spent on attribute upgrades.",
		}, []string{"guild"}),
		inactiveFlagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inactivity",
			Name:      "flagged_total",
			Help:      "Wrestlers marked inactive by sweeps.",
		}, []string{"guild"}),
		inactiveWarned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inactivity",
			Name:      "warned_total",
			Help:      "Inactivity warnings issued by sweeps.",
		}, []string{"guild"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Scheduled job runs, by job and outcome.",
		}, []string{"job", "status"}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled job runs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.commands, m.currency, m.matches, m.upgradeSpend,
		m.inactiveFlagged, m.inactiveWarned, m.jobRuns, m.jobDuration,
	)
	return m
}

// CommandHandled counts one slash command. status is "ok" or "error".
func (m *Metrics) CommandHandled(command, status string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, status).Inc()
}

// JobRan records one scheduled job run.
func (m *Metrics) JobRan(job string, took time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.jobRuns.WithLabelValues(job, status).Inc()
	m.jobDuration.Observe(took.Seconds())
}

// CurrencyAwarded implements core.Observer.
func (m *Metrics) CurrencyAwarded(guildID string, amount int) {
	if m == nil {
		return
	}
	m.currency.WithLabelValues(guildID).Add(float64(amount))
}

// MatchRecorded implements core.Observer.
func (m *Metrics) MatchRecorded(guildID string, titleChange bool) {
	if m == nil {
		return
	}
	label := "false"
	if titleChange {
		label = "true"
	}
	m.matches.WithLabelValues(guildID, label).Inc()
}

// UpgradePurchased implements core.Observer.
func (m *Metrics) UpgradePurchased(guildID string, cost int) {
	if m == nil {
		return
	}
	m.upgradeSpend.WithLabelValues(guildID).Add(float64(cost))
}

// InactivitySwept implements core.Observer.
func (m *Metrics) InactivitySwept(guildID string, inactive, warnings int) {
	if m == nil {
		return
	}
	m.inactiveFlagged.WithLabelValues(guildID).Add(float64(inactive))
	m.inactiveWarned.WithLabelValues(guildID).Add(float64(warnings))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
