package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheTTL controls how long a cached response stays fresh.
// One hour matches the remote API's own caching guidance and keeps
// repeated builds from re-downloading an unchanged repository.
const DefaultCacheTTL = time.Hour

// CachedFetcher wraps URL fetching with a file-backed response cache.
// Responses are stored one file per URL under the cache directory, keyed
// by URL hash.
type CachedFetcher struct {
	dir       string
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // for forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a cached fetcher storing responses under dir.
func NewCachedFetcher(dir string, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		dir:       dir,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool // whether this result came from cache
}

// cacheEntry is the on-disk representation of one cached response.
type cacheEntry struct {
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetched_at"`
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type"`
	Body        string    `json:"body"`
}

// Fetch retrieves a URL, returning the cached response if it is still
// within the TTL, otherwise fetching fresh content and caching it.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if entry := f.readFresh(urlStr); entry != nil {
			return &CachedResult{
				Result: &Result{
					URL:         entry.URL,
					Body:        entry.Body,
					ContentType: entry.ContentType,
					StatusCode:  entry.StatusCode,
				},
				FromCache: true,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	// A failed cache write never fails the fetch; the content is in hand.
	_ = f.write(urlStr, result)

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate removes the cached response for a URL, forcing a re-fetch on
// the next request. Removing a missing entry is not an error.
func (f *CachedFetcher) Invalidate(urlStr string) error {
	err := os.Remove(f.entryPath(urlStr))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to invalidate cache for %s: %w", urlStr, err)
	}
	return nil
}

func (f *CachedFetcher) entryPath(urlStr string) string {
	sum := sha256.Sum256([]byte(urlStr))
	return filepath.Join(f.dir, hex.EncodeToString(sum[:])+".json")
}

// readFresh returns the cached entry for a URL if present and within the
// TTL, nil otherwise. Unreadable or corrupt entries count as misses.
func (f *CachedFetcher) readFresh(urlStr string) *cacheEntry {
	data, err := os.ReadFile(f.entryPath(urlStr))
	if err != nil {
		return nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	if time.Since(entry.FetchedAt) > f.cacheTTL {
		return nil
	}
	return &entry
}

func (f *CachedFetcher) write(urlStr string, result *Result) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	entry := cacheEntry{
		URL:         urlStr,
		FetchedAt:   time.Now().UTC(),
		StatusCode:  result.StatusCode,
		ContentType: result.ContentType,
		Body:        result.Body,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return os.WriteFile(f.entryPath(urlStr), data, 0644)
}
