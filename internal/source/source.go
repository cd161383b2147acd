// Package source obtains the list repository this tool builds from.
// The default mode keeps a local git clone under a cache directory and
// reuses it across runs; remote mode enumerates the repository through
// the GitHub contents API without cloning.
package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultRepoURL is the upstream list repository.
const DefaultRepoURL = "https://github.com/ai-prompts/prompt-lists.git"

// ListsDir returns the directory inside a clone that holds the group
// subdirectories.
func ListsDir(cacheDir string) string {
	return filepath.Join(cacheDir, "lists")
}

// Syncer manages the local clone of the list repository.
type Syncer struct {
	RepoURL  string
	CacheDir string

	// run executes an external command; replaceable in tests.
	run func(ctx context.Context, name string, args ...string) error
}

// NewSyncer creates a syncer for the given repository and cache directory.
func NewSyncer(repoURL, cacheDir string) *Syncer {
	return &Syncer{
		RepoURL:  repoURL,
		CacheDir: cacheDir,
		run:      runCommand,
	}
}

// Ensure guarantees a usable clone exists: if the cache directory is
// missing, clone into it; otherwise leave it untouched. Returns whether a
// clone was performed.
func (s *Syncer) Ensure(ctx context.Context) (cloned bool, err error) {
	if _, err := os.Stat(s.CacheDir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, &UnavailableError{Repo: s.RepoURL, Message: "cannot stat cache directory", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.CacheDir), 0755); err != nil {
		return false, &UnavailableError{Repo: s.RepoURL, Message: "cannot create cache parent directory", Cause: err}
	}

	if err := s.run(ctx, "git", "clone", "--depth", "1", s.RepoURL, s.CacheDir); err != nil {
		return false, &UnavailableError{Repo: s.RepoURL, Message: "git clone failed", Cause: err}
	}
	return true, nil
}

// Refresh updates an existing clone to the latest upstream state, cloning
// first if the cache is missing.
func (s *Syncer) Refresh(ctx context.Context) error {
	cloned, err := s.Ensure(ctx)
	if err != nil || cloned {
		return err
	}

	if err := s.run(ctx, "git", "-C", s.CacheDir, "pull", "--ff-only"); err != nil {
		return &UnavailableError{Repo: s.RepoURL, Message: "git pull failed", Cause: err}
	}
	return nil
}

// runCommand executes an external command, surfacing its combined output
// in the error on failure.
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %v: %w: %s", name, args, err, string(out))
	}
	return nil
}
