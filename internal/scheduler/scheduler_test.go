package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/ringside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	reports  []schema.InactivityReport
	sweepErr error
	queued   int
	sweeps   int
}

func (f *fakeJobs) SweepAll(context.Context) ([]schema.InactivityReport, error) {
	f.sweeps++
	return f.reports, f.sweepErr
}

func (f *fakeJobs) ProcessAllQueues(context.Context) (int, error) { return f.queued, nil }

type fakeRecorder struct {
	mu   sync.Mutex
	runs map[string][]error
}

func (r *fakeRecorder) JobRan(job string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runs == nil {
		r.runs = map[string][]error{}
	}
	r.runs[job] = append(r.runs[job], err)
}

type fakeNotifier struct{ guilds []string }

func (n *fakeNotifier) AnnounceInactivity(_ context.Context, r schema.InactivityReport) {
	n.guilds = append(n.guilds, r.GuildID)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Schedules(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantJobs []string
		wantErr  string
	}{
		{"both", Config{SweepSchedule: "0 4 * * *", QueueSchedule: "@hourly"}, []string{SweepJob, QueueJob}, ""},
		{"sweep only", Config{SweepSchedule: "0 4 * * *"}, []string{SweepJob}, ""},
		{"none", Config{}, nil, ""},
		{"bad sweep", Config{SweepSchedule: "every day"}, nil, "invalid cron expression for inactivity_sweep"},
		{"bad queue", Config{SweepSchedule: "0 4 * * *", QueueSchedule: "61 * * * *"}, nil, "invalid cron expression for upgrade_queue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, &fakeJobs{}, quietLogger())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantJobs, s.Jobs())
		})
	}
}

func TestRunSweep(t *testing.T) {
	jobs := &fakeJobs{reports: []schema.InactivityReport{
		{GuildID: "g1", Inactive: []schema.InactivityNotice{{Name: "Titan"}}},
		{GuildID: "g2"},
		{GuildID: "g3", Warnings: []schema.InactivityNotice{{Name: "Nova"}}},
	}}
	rec := &fakeRecorder{}
	notifier := &fakeNotifier{}
	s, err := New(Config{}, jobs, quietLogger(), WithRecorder(rec), WithNotifier(notifier))
	require.NoError(t, err)

	require.NoError(t, s.RunSweep(context.Background()))
	assert.Equal(t, []string{"g1", "g3"}, notifier.guilds, "quiet guilds get no announcement")
	assert.Equal(t, []error{nil}, rec.runs[SweepJob])

	jobs.sweepErr = errors.New("guild g4: db down")
	err = s.RunSweep(context.Background())
	require.Error(t, err)
	assert.Len(t, rec.runs[SweepJob], 2)
	assert.Equal(t, jobs.sweepErr, rec.runs[SweepJob][1])
}

func TestRunQueue(t *testing.T) {
	rec := &fakeRecorder{}
	s, err := New(Config{}, &fakeJobs{queued: 3}, quietLogger(), WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, s.RunQueue(context.Background()))
	assert.Len(t, rec.runs[QueueJob], 1)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, err := New(Config{SweepSchedule: "0 4 * * *"}, &fakeJobs{}, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	<-s.Done()
	assert.NotPanics(t, s.Stop, "Stop is idempotent")
}
