package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huangsam/ringside/core"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ core.Observer = (*Metrics)(nil)

func TestObserverCounters(t *testing.T) {
	m := New()
	m.CurrencyAwarded("g1", 12)
	m.CurrencyAwarded("g1", 8)
	m.MatchRecorded("g1", true)
	m.MatchRecorded("g1", false)
	m.MatchRecorded("g1", false)
	m.UpgradePurchased("g1", 700)
	m.InactivitySwept("g1", 2, 1)

	assert.InDelta(t, 20, testutil.ToFloat64(m.currency.WithLabelValues("g1")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.matches.WithLabelValues("g1", "true")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.matches.WithLabelValues("g1", "false")), 0)
	assert.InDelta(t, 700, testutil.ToFloat64(m.upgradeSpend.WithLabelValues("g1")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.inactiveFlagged.WithLabelValues("g1")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.inactiveWarned.WithLabelValues("g1")), 0)
}

func TestCommandsAndJobs(t *testing.T) {
	m := New()
	m.CommandHandled("daily", "ok")
	m.CommandHandled("daily", "error")
	m.JobRan("sweep", time.Second, nil)
	m.JobRan("sweep", time.Second, errors.New("db down"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.commands.WithLabelValues("daily", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.jobRuns.WithLabelValues("sweep", "error")), 0)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CommandHandled("daily", "ok")
		m.CurrencyAwarded("g1", 1)
		m.MatchRecorded("g1", true)
		m.UpgradePurchased("g1", 1)
		m.InactivitySwept("g1", 1, 1)
		m.JobRan("sweep", 0, nil)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.CurrencyAwarded("g1", 5)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ringside_economy_currency_awarded_total{guild="g1"} 5`)
	assert.Contains(t, string(body), "go_goroutines")
}
