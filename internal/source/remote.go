package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/list-bundler/internal/fetch"
)

// DefaultContentsAPI is the GitHub contents API endpoint listing the
// upstream repository's group directories.
const DefaultContentsAPI = "https://api.github.com/repos/ai-prompts/prompt-lists/contents/lists/"

// RemoteLister mirrors the list tree through the GitHub contents API
// instead of a local clone. API responses and file bodies go through the
// cached fetcher, so repeated builds within the TTL hit no network.
type RemoteLister struct {
	APIURL  string
	Fetcher *fetch.CachedFetcher
}

// remoteEntry is the subset of a contents API item this tool needs.
type remoteEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// Download materializes the remote list tree under destDir, one
// subdirectory per group with the original file names, and returns the
// root the loader should read. Any API or download failure is fatal: a
// partial mirror would silently shrink the emitted bundles.
func (r *RemoteLister) Download(ctx context.Context, destDir string) (string, error) {
	apiURL := r.APIURL
	if apiURL == "" {
		apiURL = DefaultContentsAPI
	}

	groups, err := r.fetchEntries(ctx, apiURL)
	if err != nil {
		return "", &UnavailableError{Repo: apiURL, Message: "cannot list groups", Cause: err}
	}

	for _, g := range groups {
		if g.Type != "dir" {
			continue
		}

		files, err := r.fetchEntries(ctx, g.URL)
		if err != nil {
			return "", &UnavailableError{Repo: apiURL, Message: fmt.Sprintf("cannot list group %q", g.Name), Cause: err}
		}

		groupDir := filepath.Join(destDir, g.Name)
		if err := os.MkdirAll(groupDir, 0755); err != nil {
			return "", &UnavailableError{Repo: apiURL, Message: "cannot create mirror directory", Cause: err}
		}

		for _, f := range files {
			if f.Type != "file" || !strings.HasSuffix(f.Name, ".yml") {
				continue
			}
			res, err := r.Fetcher.Fetch(ctx, f.DownloadURL)
			if err != nil {
				return "", &UnavailableError{Repo: apiURL, Message: fmt.Sprintf("cannot download %s/%s", g.Name, f.Name), Cause: err}
			}
			path := filepath.Join(groupDir, f.Name)
			if err := os.WriteFile(path, []byte(res.Body), 0644); err != nil {
				return "", &UnavailableError{Repo: apiURL, Message: fmt.Sprintf("cannot write %s", path), Cause: err}
			}
		}
	}

	return destDir, nil
}

func (r *RemoteLister) fetchEntries(ctx context.Context, urlStr string) ([]remoteEntry, error) {
	res, err := r.Fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	var entries []remoteEntry
	if err := json.Unmarshal([]byte(res.Body), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode contents API response from %s: %w", urlStr, err)
	}
	return entries, nil
}
