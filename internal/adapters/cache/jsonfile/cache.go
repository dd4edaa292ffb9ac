package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/cc-quota/internal/domain"
	"github.com/bnema/cc-quota/internal/ports"
	"github.com/rs/zerolog"
)

const (
	DefaultSuccessTTL = 60 * time.Second
	DefaultFailureTTL = 15 * time.Second

	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	tempFilePattern = ".usage-cache-*.json.tmp"
)

type cacheFile struct {
	Data      *domain.Snapshot `json:"data"`
	Timestamp int64            `json:"timestamp"` // epoch milliseconds
}

// Cache keeps the most recent snapshot in a single JSON file. Degraded
// snapshots expire after failureTTL, reports after successTTL.
type Cache struct {
	path       string
	successTTL time.Duration
	failureTTL time.Duration
	clock      ports.Clock
	logger     zerolog.Logger
}

var _ ports.UsageCache = (*Cache)(nil)

func NewCache(path string, successTTL, failureTTL time.Duration, clock ports.Clock, logger zerolog.Logger) *Cache {
	if successTTL <= 0 {
		successTTL = DefaultSuccessTTL
	}
	if failureTTL <= 0 {
		failureTTL = DefaultFailureTTL
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Cache{
		path:       filepath.Clean(path),
		successTTL: successTTL,
		failureTTL: failureTTL,
		clock:      clock,
		logger:     logger.With().Str("component", "cache").Logger(),
	}
}

func (c *Cache) Path() string {
	return c.path
}

// Read returns the cached snapshot while it is within its TTL. Missing,
// unreadable, malformed and stale entries are all misses.
func (c *Cache) Read(ctx context.Context) (domain.Snapshot, bool) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, false
	}

	entry, err := c.readFile()
	if err != nil {
		c.logger.Debug().Err(err).Msg("cache miss")
		return domain.Snapshot{}, false
	}

	ttl := c.successTTL
	if entry.Data.APIUnavailable() {
		ttl = c.failureTTL
	}

	age := time.Duration(c.clock.Now().UnixMilli()-entry.Timestamp) * time.Millisecond
	if age > ttl {
		c.logger.Debug().Dur("age", age).Dur("ttl", ttl).Msg("cache expired")
		return domain.Snapshot{}, false
	}

	c.logger.Debug().Dur("age", age).Bool("api_unavailable", entry.Data.APIUnavailable()).Msg("cache hit")
	return *entry.Data, true
}

// Write replaces the cache file with snapshot stamped at the current time.
// Failures are logged and dropped; caching is best effort.
func (c *Cache) Write(ctx context.Context, snapshot domain.Snapshot) {
	if err := ctx.Err(); err != nil {
		return
	}

	entry := cacheFile{
		Data:      &snapshot,
		Timestamp: c.clock.Now().UnixMilli(),
	}
	if err := c.writeFile(entry); err != nil {
		c.logger.Debug().Err(err).Msg("cache write failed")
		return
	}

	c.logger.Debug().Str("path", c.path).Msg("cache written")
}

// Clear removes the cache file. A missing file is not an error.
func (c *Cache) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}

	return nil
}

func (c *Cache) readFile() (cacheFile, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return cacheFile{}, fmt.Errorf("read cache file: %w", err)
	}

	var entry cacheFile
	if err := json.Unmarshal(data, &entry); err != nil {
		return cacheFile{}, fmt.Errorf("decode cache file: %w", err)
	}
	if entry.Data == nil {
		return cacheFile{}, errors.New("cache file has no data")
	}

	return entry, nil
}

func (c *Cache) writeFile(entry cacheFile) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cache file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tempName, c.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}

	cleanup = false
	return nil
}
