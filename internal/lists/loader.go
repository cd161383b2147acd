package lists

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/jonathan/list-bundler/internal/schemas"
)

// DefaultBlacklist names list files that are never loaded. all.yml
// aggregates every other list in the source repository and would
// double-count each item.
var DefaultBlacklist = []string{"all.yml"}

// Options configures the loader.
type Options struct {
	// Blacklist holds file names to ignore entirely. Nil means
	// DefaultBlacklist; an empty non-nil slice disables the blacklist.
	Blacklist []string

	// FrontMatterSchema optionally holds JSON Schema content that each
	// file's front matter is validated against. Empty disables schema
	// validation; structural checks (title, items) always apply.
	FrontMatterSchema string
}

// Load walks the source tree rooted at root and parses every recognized
// list file into a ListRecord. Directory entries are visited in sorted
// order so the result is deterministic across filesystems. Malformed files
// are skipped and reported in the result, never fatal; only an unreadable
// root or group directory aborts the load.
func Load(root string, opts *Options) (*LoadResult, error) {
	if opts == nil {
		opts = &Options{}
	}
	blacklist := opts.Blacklist
	if blacklist == nil {
		blacklist = DefaultBlacklist
	}

	// os.ReadDir returns entries sorted by name, so the record order is
	// deterministic regardless of the underlying filesystem.
	groups, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root %s: %w", root, err)
	}

	result := &LoadResult{}
	seen := make(map[string]bool) // "group/key" uniqueness guard

	for _, g := range groups {
		if !g.IsDir() {
			continue
		}
		group := g.Name()
		groupDir := filepath.Join(root, group)

		files, err := os.ReadDir(groupDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read group directory %s: %w", groupDir, err)
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".yml") || blacklisted(f.Name(), blacklist) {
				continue
			}
			path := filepath.Join(groupDir, f.Name())

			rec, err := loadFile(path, group, opts.FrontMatterSchema)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedFile{
					Path:   path,
					Reason: skipReason(err),
				})
				continue
			}

			id := rec.Group + "/" + rec.Key
			if seen[id] {
				result.Skipped = append(result.Skipped, SkippedFile{
					Path:   path,
					Reason: fmt.Sprintf("duplicate list key %q in group %q", rec.Key, rec.Group),
				})
				continue
			}
			seen[id] = true
			result.Records = append(result.Records, rec)
		}
	}

	return result, nil
}

// loadFile parses a single list file into a ListRecord.
func loadFile(path, group, schema string) (ListRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ListRecord{}, &MalformedListError{Path: path, Message: "unreadable file", Cause: err}
	}

	meta, body, err := SplitFrontMatter(string(raw))
	if err != nil {
		if me, ok := err.(*MalformedListError); ok {
			me.Path = path
		}
		return ListRecord{}, err
	}

	if schema != "" {
		if err := validateFrontMatter(meta, schema); err != nil {
			return ListRecord{}, &MalformedListError{Path: path, Message: "front matter rejected by schema", Cause: err}
		}
	}

	title := titleFrom(meta)
	if title == "" {
		return ListRecord{}, &MalformedListError{Path: path, Message: "missing title in front matter"}
	}

	items := bodyItems(body)
	if len(items) == 0 {
		return ListRecord{}, &MalformedListError{Path: path, Message: "list has no items"}
	}

	key := slug.Make(strings.TrimSuffix(filepath.Base(path), ".yml"))
	return ListRecord{
		Group: group,
		Key:   key,
		Title: title,
		Items: items,
	}, nil
}

// validateFrontMatter runs the parsed front matter through a JSON Schema.
// YAML front matter is re-marshaled to JSON first since the schema
// validator only speaks JSON documents.
func validateFrontMatter(meta map[string]any, schema string) error {
	doc, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode front matter: %w", err)
	}
	return schemas.ValidateJSONString(schema, string(doc))
}

func blacklisted(name string, blacklist []string) bool {
	for _, b := range blacklist {
		if name == b {
			return true
		}
	}
	return false
}

func skipReason(err error) string {
	if me, ok := err.(*MalformedListError); ok {
		if me.Cause != nil {
			return fmt.Sprintf("%s: %v", me.Message, me.Cause)
		}
		return me.Message
	}
	return err.Error()
}
