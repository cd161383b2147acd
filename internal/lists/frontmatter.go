package lists

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// SplitFrontMatter separates a list file into its YAML front matter and
// body. Files without a leading "---" delimiter have no front matter; the
// whole text is treated as body. An unterminated front matter block is
// treated the same way, matching the tolerant behavior of the source
// repository's own tooling.
func SplitFrontMatter(text string) (map[string]any, string, error) {
	if !strings.HasPrefix(text, "---") {
		return map[string]any{}, text, nil
	}

	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return map[string]any{}, text, nil
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return nil, "", &MalformedListError{
			Message: "invalid YAML front matter",
			Cause:   err,
		}
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, parts[2], nil
}

// bodyItems extracts the item strings from a list body: one item per line,
// whitespace trimmed, blank lines dropped. Order is preserved.
func bodyItems(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// titleFrom extracts the title string from parsed front matter.
// Returns "" when the key is absent or not a string.
func titleFrom(meta map[string]any) string {
	v, ok := meta["title"]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
