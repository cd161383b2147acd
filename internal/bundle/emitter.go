// Package bundle serializes a built index into the two UMD JavaScript
// data modules and the static demo page. Output files are rendered from
// embedded templates and overwrite any previous version unconditionally.
package bundle

import (
	"bytes"
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jonathan/list-bundler/internal/index"
	"github.com/jonathan/list-bundler/internal/sampling"
)

// Version is stamped into the generated file headers.
const Version = "1.0.0"

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Artifacts names the files one Emit call wrote.
type Artifacts struct {
	IndexPath   string // js/thingIndex.js
	GroupedPath string // js/categoriesWithThings.js
	DemoPath    string // index.html
}

// Emitter writes build output under a single directory.
type Emitter struct {
	OutDir string
}

// New creates an emitter targeting outDir.
func New(outDir string) *Emitter {
	return &Emitter{OutDir: outDir}
}

// Emit renders and writes both data modules plus the demo page, then
// re-parses the demo page to verify its structure. Generated content
// carries no timestamps, so unchanged input yields byte-identical output.
func (e *Emitter) Emit(ix *index.Index) (*Artifacts, error) {
	jsDir := filepath.Join(e.OutDir, "js")
	if err := os.MkdirAll(jsDir, 0755); err != nil {
		return nil, &EmitError{Artifact: "output directory", Message: "mkdir failed", Cause: err}
	}

	indexJS, err := renderThingIndex(ix)
	if err != nil {
		return nil, err
	}
	groupedJS, err := renderCategoriesWithThings(ix)
	if err != nil {
		return nil, err
	}
	demoHTML, err := renderDemo()
	if err != nil {
		return nil, err
	}
	if err := VerifyDemo(demoHTML); err != nil {
		return nil, err
	}

	a := &Artifacts{
		IndexPath:   filepath.Join(jsDir, "thingIndex.js"),
		GroupedPath: filepath.Join(jsDir, "categoriesWithThings.js"),
		DemoPath:    filepath.Join(e.OutDir, "index.html"),
	}

	for _, f := range []struct {
		path    string
		content string
	}{
		{a.IndexPath, indexJS},
		{a.GroupedPath, groupedJS},
		{a.DemoPath, demoHTML},
	} {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return nil, &EmitError{Artifact: f.path, Message: "write failed", Cause: err}
		}
	}

	return a, nil
}

func renderThingIndex(ix *index.Index) (string, error) {
	categories, err := marshalIndented(ix.CategoryTable)
	if err != nil {
		return "", &EmitError{Artifact: "thingIndex.js", Message: "failed to marshal category table", Cause: err}
	}
	kv, err := marshalIndented(ix.Flat)
	if err != nil {
		return "", &EmitError{Artifact: "thingIndex.js", Message: "failed to marshal flat index", Cause: err}
	}

	return execute("thing_index.js.tmpl", map[string]string{
		"Version":    Version,
		"Categories": categories,
		"KV":         kv,
	})
}

func renderCategoriesWithThings(ix *index.Index) (string, error) {
	// Grouped marshals itself in insertion order; json.Indent leaves the
	// content alone, unlike MarshalIndent which would re-escape it.
	raw, err := ix.Grouped.MarshalJSON()
	if err != nil {
		return "", &EmitError{Artifact: "categoriesWithThings.js", Message: "failed to marshal grouped index", Cause: err}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", &EmitError{Artifact: "categoriesWithThings.js", Message: "failed to indent grouped index", Cause: err}
	}

	return execute("categories_with_things.js.tmpl", map[string]string{
		"Version":   Version,
		"ThingList": buf.String(),
	})
}

func renderDemo() (string, error) {
	return execute("demo.html.tmpl", map[string]int{
		"MinSize":     sampling.MinSize,
		"MaxSize":     sampling.MaxSize,
		"DefaultSize": sampling.DefaultSize,
	})
}

func execute(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/"+name)
	if err != nil {
		return "", &EmitError{Artifact: name, Message: "failed to parse template", Cause: err}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &EmitError{Artifact: name, Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

// marshalIndented marshals with two-space indentation and without HTML
// escaping, keeping item text in the emitted bundles readable.
func marshalIndented(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
