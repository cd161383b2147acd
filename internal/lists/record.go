// Package lists loads categorized list files from a source directory tree.
// Each top-level subdirectory is a group; each .yml file inside it is a
// named list with YAML front matter (title) followed by one item per line.
package lists

// ListRecord is one parsed list file.
type ListRecord struct {
	Group string   // top-level directory name
	Key   string   // slug derived from the file name
	Title string   // front matter title
	Items []string // body lines, in file order, blanks removed
}

// SkippedFile records a source file the loader rejected and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// LoadResult holds the loader output: records in deterministic
// group-then-file order, plus every file skipped along the way.
type LoadResult struct {
	Records []ListRecord
	Skipped []SkippedFile
}

// Groups returns the distinct group names in record order.
func (r *LoadResult) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, rec := range r.Records {
		if !seen[rec.Group] {
			seen[rec.Group] = true
			groups = append(groups, rec.Group)
		}
	}
	return groups
}

// ItemCount returns the total number of items across all records.
func (r *LoadResult) ItemCount() int {
	n := 0
	for _, rec := range r.Records {
		n += len(rec.Items)
	}
	return n
}
