package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/logger"
)

type fakeRoster struct {
	loads int32
	err   error
}

func (f *fakeRoster) LoadFile(_ string) error {
	atomic.AddInt32(&f.loads, 1)
	return f.err
}

func (f *fakeRoster) Size() int { return 42 }

type fakeStats struct {
	reads int32
}

func (f *fakeStats) Stats() (uint64, uint64, float64) {
	atomic.AddInt32(&f.reads, 1)
	return 10, 2, 0.83
}

func TestScheduleRosterReload(t *testing.T) {
	s := New(logger.NewLogger("error"))
	roster := &fakeRoster{}

	require.NoError(t, s.ScheduleRosterReload("@every 1s", "/tmp/roster.yaml", roster))
	assert.Equal(t, 1, s.JobCount())

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&roster.loads) >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduleCacheStats(t *testing.T) {
	s := New(logger.NewLogger("error"))
	stats := &fakeStats{}

	require.NoError(t, s.ScheduleCacheStats(time.Second, "memory", stats))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&stats.reads) >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestCannotScheduleWhileRunning(t *testing.T) {
	s := New(logger.NewLogger("error"))
	s.Start()
	defer s.Stop()

	assert.Error(t, s.ScheduleRosterReload("@every 1m", "/tmp/roster.yaml", &fakeRoster{}))
	assert.Error(t, s.ScheduleCacheStats(time.Minute, "memory", &fakeStats{}))
}

func TestInvalidCronExpression(t *testing.T) {
	s := New(logger.NewLogger("error"))
	assert.Error(t, s.ScheduleRosterReload("not a cron line", "/tmp/roster.yaml", &fakeRoster{}))
}
