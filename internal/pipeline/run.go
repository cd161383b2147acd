// Package pipeline provides the high-level orchestration for the bundle
// build: acquire the list source, load records, build the index, emit the
// bundles and the report. Everything runs sequentially; a fatal error
// aborts the whole run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/list-bundler/internal/bundle"
	"github.com/jonathan/list-bundler/internal/fetch"
	"github.com/jonathan/list-bundler/internal/index"
	"github.com/jonathan/list-bundler/internal/lists"
	"github.com/jonathan/list-bundler/internal/report"
	"github.com/jonathan/list-bundler/internal/schemas"
	"github.com/jonathan/list-bundler/internal/source"
)

// frontMatterSchema is the repo-relative schema applied to list front
// matter when present; builds still work without it (structural checks
// always apply).
const frontMatterSchema = "schemas/list_front_matter.schema.json"

// buildReportSchema guards the report artifact's shape after writing.
const buildReportSchema = "schemas/build_report.schema.json"

// RunOptions holds configuration for running the build pipeline.
type RunOptions struct {
	RepoURL   string
	CacheDir  string
	SourceDir string // pre-existing list tree; skips acquisition
	OutDir    string
	Remote    bool
	Verbose   bool
	Out       io.Writer // progress output; defaults to os.Stdout
}

// RunResult collects everything a finished build produced.
type RunResult struct {
	Report    *report.BuildReport
	Index     *index.Index
	Loaded    *lists.LoadResult
	Artifacts *bundle.Artifacts
}

func (o *RunOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// LoadIndex acquires the list source and builds the in-memory index
// without emitting anything. Commands that only query the index (lookup,
// sample, serve) share this path with the full build.
func LoadIndex(ctx context.Context, opts RunOptions) (*index.Index, *lists.LoadResult, error) {
	srcDir, _, err := acquireSource(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	loaded, err := loadRecords(srcDir, opts)
	if err != nil {
		return nil, nil, err
	}

	return index.Build(loaded.Records), loaded, nil
}

// RunBuild executes the full pipeline and returns the build result.
func RunBuild(ctx context.Context, opts RunOptions) (*RunResult, error) {
	out := opts.out()

	// Step 1: Acquire the list source (local clone, remote mirror, or a
	// directory handed to us directly).
	srcDir, label, err := acquireSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	rep := report.New(label, opts.Remote)

	// Step 2: Load list records, collecting skip warnings.
	loaded, err := loadRecords(srcDir, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range loaded.Skipped {
		fmt.Fprintf(out, "Warning: skipped %s: %s\n", s.Path, s.Reason)
	}

	// Step 3: Build the index.
	ix := index.Build(loaded.Records)

	// Step 4: Emit bundles and demo page.
	artifacts, err := bundle.New(opts.OutDir).Emit(ix)
	if err != nil {
		return nil, err
	}

	// Step 5: Write and check the build report.
	rep.Finalize(loaded, ix)
	reportPath, err := rep.Write(opts.OutDir)
	if err != nil {
		return nil, err
	}
	if schemaPath := schemas.ResolveSchemaPath(buildReportSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, reportPath); err != nil {
			return nil, fmt.Errorf("build report failed schema validation: %w", err)
		}
	}

	if opts.Verbose {
		report.NewPrinter(out).PrintBuildReport(rep)
	}

	return &RunResult{
		Report:    rep,
		Index:     ix,
		Loaded:    loaded,
		Artifacts: artifacts,
	}, nil
}

// acquireSource resolves the directory of group subdirectories to load
// from, performing a clone or remote mirror when needed. The second return
// value labels the source in the build report.
func acquireSource(ctx context.Context, opts RunOptions) (dir, label string, err error) {
	if opts.SourceDir != "" {
		return opts.SourceDir, opts.SourceDir, nil
	}

	if opts.Remote {
		lister := &source.RemoteLister{
			Fetcher: fetch.NewCachedFetcher(filepath.Join(opts.CacheDir, "http"), nil),
		}
		mirror := filepath.Join(opts.CacheDir, "remote", "lists")
		dir, err := lister.Download(ctx, mirror)
		if err != nil {
			return "", "", err
		}
		return dir, source.DefaultContentsAPI, nil
	}

	repoURL := opts.RepoURL
	if repoURL == "" {
		repoURL = source.DefaultRepoURL
	}
	syncer := source.NewSyncer(repoURL, opts.CacheDir)
	if _, err := syncer.Ensure(ctx); err != nil {
		return "", "", err
	}
	return source.ListsDir(opts.CacheDir), repoURL, nil
}

func loadRecords(srcDir string, opts RunOptions) (*lists.LoadResult, error) {
	loadOpts := &lists.Options{}
	if schemaPath := schemas.ResolveSchemaPath(frontMatterSchema); schemaPath != "" {
		content, err := os.ReadFile(schemaPath)
		if err == nil {
			loadOpts.FrontMatterSchema = string(content)
		}
	}
	return lists.Load(srcDir, loadOpts)
}
