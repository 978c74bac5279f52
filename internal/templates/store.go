// Package templates is a read-only library of Amazon Connect configuration
// blueprints (case templates, agent views, routing config, CloudFormation
// snippets), embedded in the binary and organized category/name.
package templates

import (
	"encoding/json"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arcline/connect-mcp/internal/errs"
)

//go:embed files
var templateFS embed.FS

const root = "files"

// Categories lists the known template categories in a fixed order.
var Categories = []string{"cases", "views", "data_tables", "routing", "profiles", "ai", "campaigns", "iac"}

// Info identifies one stored template.
type Info struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Subcategory string `json:"subcategory,omitempty"`
	Path        string `json:"path"`
}

// List returns the templates in a category, sorted by path. An unknown or
// empty category yields an empty (or, for empty, the full) list rather than
// an error: discovery-first callers probe categories freely.
func List(category string) []Info {
	var out []Info
	cats := Categories
	if category != "" {
		cats = []string{category}
	}
	for _, cat := range cats {
		dir := path.Join(root, cat)
		fs.WalkDir(templateFS, dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil // unknown category: empty result, not an error
			}
			ext := path.Ext(p)
			if ext != ".json" && ext != ".yaml" {
				return nil
			}
			rel := strings.TrimPrefix(p, dir+"/")
			sub := ""
			if i := strings.IndexByte(rel, '/'); i >= 0 {
				sub = rel[:i]
			}
			out = append(out, Info{
				Category:    cat,
				Name:        strings.TrimSuffix(path.Base(p), ext),
				Subcategory: sub,
				Path:        strings.TrimPrefix(p, root+"/"),
			})
			return nil
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Get loads a template by category and name, trying name.json then
// name.yaml. The returned document is an independent copy; mutating it does
// not affect the store.
func Get(category, name, subcategory string) (map[string]any, error) {
	base := path.Join(root, category)
	if subcategory != "" {
		base = path.Join(base, subcategory)
	}

	if data, err := templateFS.ReadFile(path.Join(base, name+".json")); err == nil {
		var doc map[string]any
		if uerr := json.Unmarshal(data, &doc); uerr != nil {
			return nil, uerr
		}
		return doc, nil
	}
	if data, err := templateFS.ReadFile(path.Join(base, name+".yaml")); err == nil {
		return decodeYAML(data)
	}
	return nil, &errs.NotFoundError{Kind: "template", Name: path.Join(category, subcategory, name)}
}

// Customize fetches a template and applies overrides via Merge. The result
// is a new document; nothing is persisted.
func Customize(category, name, subcategory string, overrides map[string]any) (map[string]any, error) {
	doc, err := Get(category, name, subcategory)
	if err != nil {
		return nil, err
	}
	return Merge(doc, overrides), nil
}
