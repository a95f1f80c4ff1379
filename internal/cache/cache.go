// Package cache is the on-disk response cache.
//
// API responses are stored in a small SQLite database keyed by endpoint and
// query, each entry carrying its own expiry. Reads go through the cache;
// mutations invalidate the affected key prefix.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTTL is how long cached responses stay fresh unless configured.
const DefaultTTL = 5 * time.Minute

// Cache is a SQLite-backed key/value store with per-entry expiry.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// Stats summarizes cache contents.
type Stats struct {
	Entries int   `json:"entries"`
	Expired int   `json:"expired"`
	Bytes   int64 `json:"bytes"`
}

// DefaultPath returns the default cache database path.
func DefaultPath() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "tix", "cache.db")
	}
	return filepath.Join(".", "tix-cache.db")
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	c := &Cache{db: db, now: time.Now}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) initialize() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("initialize cache schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached value for key if present and not expired.
// Expired rows are deleted lazily on read.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt int64

	err := c.db.QueryRow(
		`SELECT value, expires_at FROM entries WHERE key = ?`, key,
	).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	if c.now().Unix() >= expiresAt {
		_, _ = c.db.Exec(`DELETE FROM entries WHERE key = ?`, key)
		return nil, false, nil
	}
	return value, true, nil
}

// Put stores value under key for ttl. A non-positive ttl falls back to
// DefaultTTL.
func (c *Cache) Put(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	expiresAt := c.now().Add(ttl).Unix()

	_, err := c.db.Exec(`
		INSERT INTO entries (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// DeletePrefix removes every entry whose key starts with prefix. Used to
// invalidate a resource family (e.g. all cached task listings) after a
// mutation.
func (c *Cache) DeletePrefix(prefix string) error {
	_, err := c.db.Exec(
		`DELETE FROM entries WHERE key >= ? AND key < ?`, prefix, prefix+"\xff",
	)
	if err != nil {
		return fmt.Errorf("invalidate cache prefix %q: %w", prefix, err)
	}
	return nil
}

// Purge removes all entries.
func (c *Cache) Purge() error {
	if _, err := c.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// Stats reports entry counts and stored size.
func (c *Cache) Stats() (Stats, error) {
	var stats Stats
	nowUnix := c.now().Unix()

	err := c.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(LENGTH(value)), 0)
		FROM entries
	`, nowUnix).Scan(&stats.Entries, &stats.Expired, &stats.Bytes)
	if err != nil {
		return Stats{}, fmt.Errorf("read cache stats: %w", err)
	}
	return stats, nil
}
