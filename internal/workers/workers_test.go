package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/painel-produtividade/internal/logger"
)

// fakeSessionRepo counts purge calls and records the last cutoff.
type fakeSessionRepo struct {
	mu         sync.Mutex
	calls      int
	lastCutoff time.Time
	purged     int64
}

func (f *fakeSessionRepo) CreateSession(context.Context, int64, string) error { return nil }

func (f *fakeSessionRepo) PurgeSessionsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastCutoff = cutoff
	return f.purged, nil
}

func (f *fakeSessionRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSessionPurgeWorker_PurgesOnTick(t *testing.T) {
	repo := &fakeSessionRepo{purged: 3}
	worker := newSessionPurgeWorker(repo, 10*time.Millisecond, time.Hour, logger.Nop())

	worker.Run()

	deadline := time.After(time.Second)
	for repo.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected at least one purge within a second")
		case <-time.After(5 * time.Millisecond):
		}
	}

	worker.Stop()

	repo.mu.Lock()
	cutoff := repo.lastCutoff
	repo.mu.Unlock()

	// cutoff = now - maxAge, allow generous slack
	expected := time.Now().Add(-time.Hour)
	if cutoff.Before(expected.Add(-time.Minute)) || cutoff.After(expected.Add(time.Minute)) {
		t.Errorf("cutoff %v not within a minute of %v", cutoff, expected)
	}
}

func TestSessionPurgeWorker_StopBeforeFirstTick(t *testing.T) {
	repo := &fakeSessionRepo{}
	worker := newSessionPurgeWorker(repo, time.Hour, time.Hour, logger.Nop())

	worker.Run()
	worker.Stop()

	if repo.callCount() != 0 {
		t.Errorf("expected no purge before the first tick, got %d", repo.callCount())
	}
}

func TestWorkers_RunAndStopAll(t *testing.T) {
	repo := &fakeSessionRepo{}
	w := &Workers{workers: []Worker{
		newSessionPurgeWorker(repo, time.Hour, time.Hour, logger.Nop()),
	}}

	w.Run()
	w.Stop()
}
