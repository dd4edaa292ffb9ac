package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/cc-quota/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCache(t *testing.T) (*Cache, *manualClock) {
	t.Helper()

	clock := &manualClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "cc-statusline", ".usage-cache.json")
	return NewCache(path, DefaultSuccessTTL, DefaultFailureTTL, clock, zerolog.Nop()), clock
}

func sampleReport() domain.Snapshot {
	fiveHourReset := time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC)
	sevenDayReset := time.Date(2026, 2, 18, 9, 30, 0, 0, time.UTC)
	return domain.NewReportSnapshot(domain.PlanMax, domain.Report{
		FiveHour:       domain.Window{Utilization: domain.Ptr(4), ResetsAt: &fiveHourReset},
		SevenDay:       domain.Window{Utilization: domain.Ptr(80), ResetsAt: &sevenDayReset},
		SevenDaySonnet: domain.Window{Utilization: domain.Ptr(0)},
	})
}

func TestCacheRoundTripWithinTTL(t *testing.T) {
	t.Parallel()

	cache, clock := newTestCache(t)
	want := sampleReport()

	cache.Write(context.Background(), want)
	clock.Advance(10 * time.Second)

	got, ok := cache.Read(context.Background())
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCacheReportTTLBoundary(t *testing.T) {
	t.Parallel()

	cache, clock := newTestCache(t)
	cache.Write(context.Background(), sampleReport())

	clock.Advance(DefaultSuccessTTL)
	_, ok := cache.Read(context.Background())
	assert.True(t, ok, "entry aged exactly the TTL is still fresh")

	clock.Advance(time.Millisecond)
	_, ok = cache.Read(context.Background())
	assert.False(t, ok)
}

func TestCacheDegradedTTLBoundary(t *testing.T) {
	t.Parallel()

	cache, clock := newTestCache(t)
	want := domain.NewDegradedSnapshot(domain.PlanPro)
	cache.Write(context.Background(), want)

	clock.Advance(DefaultFailureTTL - time.Millisecond)
	got, ok := cache.Read(context.Background())
	require.True(t, ok)
	assert.Equal(t, want, got)

	clock.Advance(2 * time.Millisecond)
	_, ok = cache.Read(context.Background())
	assert.False(t, ok)
}

func TestCacheDegradedExpiresBeforeReport(t *testing.T) {
	t.Parallel()

	degraded, degradedClock := newTestCache(t)
	report, reportClock := newTestCache(t)

	degraded.Write(context.Background(), domain.NewDegradedSnapshot(domain.PlanNone))
	report.Write(context.Background(), sampleReport())

	degradedClock.Advance(30 * time.Second)
	reportClock.Advance(30 * time.Second)

	_, ok := degraded.Read(context.Background())
	assert.False(t, ok)
	_, ok = report.Read(context.Background())
	assert.True(t, ok)
}

func TestCacheReadMisses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "{not json"},
		{name: "missing data", content: `{"timestamp": 1}`},
		{name: "wrong type", content: `{"data": [], "timestamp": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, _ := newTestCache(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(cache.Path()), 0o700))
			require.NoError(t, os.WriteFile(cache.Path(), []byte(tt.content), 0o600))

			_, ok := cache.Read(context.Background())
			assert.False(t, ok)
		})
	}
}

func TestCacheReadMissingFile(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	_, ok := cache.Read(context.Background())
	assert.False(t, ok)
}

func TestCacheWriteCreatesDirectoryAndFileShape(t *testing.T) {
	t.Parallel()

	cache, clock := newTestCache(t)
	cache.Write(context.Background(), domain.NewDegradedSnapshot(domain.PlanTeam))

	info, err := os.Stat(cache.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(cacheFileMode), info.Mode().Perm())

	data, err := os.ReadFile(cache.Path())
	require.NoError(t, err)

	var raw struct {
		Data      map[string]any `json:"data"`
		Timestamp int64          `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, clock.Now().UnixMilli(), raw.Timestamp)
	assert.Equal(t, "Team", raw.Data["planName"])
	assert.Equal(t, true, raw.Data["apiUnavailable"])
	assert.Nil(t, raw.Data["fiveHour"])
}

func TestCacheWriteReplacesPreviousEntry(t *testing.T) {
	t.Parallel()

	cache, clock := newTestCache(t)
	cache.Write(context.Background(), domain.NewDegradedSnapshot(domain.PlanMax))
	clock.Advance(time.Second)

	want := sampleReport()
	cache.Write(context.Background(), want)

	got, ok := cache.Read(context.Background())
	require.True(t, ok)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(cache.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not linger")
}

func TestCacheWriteFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cache := NewCache(filepath.Join(blocker, "cache.json"), 0, 0, nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		cache.Write(context.Background(), sampleReport())
	})
	_, ok := cache.Read(context.Background())
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)
	require.NoError(t, cache.Clear(context.Background()))

	cache.Write(context.Background(), sampleReport())
	require.NoError(t, cache.Clear(context.Background()))

	_, err := os.Stat(cache.Path())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
