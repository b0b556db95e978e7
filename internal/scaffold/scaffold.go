package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/qscaffold/qscaffold/internal/answers"
	"github.com/qscaffold/qscaffold/internal/blueprint"
	"github.com/qscaffold/qscaffold/internal/filter"
	"github.com/qscaffold/qscaffold/internal/project"
)

//go:embed all:templates
var scaffoldFS embed.FS

const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Skipped   []string
	Warnings  []string
}

// Templates returns the template tree named by bp.Templates. Embedded sets
// are tried first; otherwise the name is taken as a directory on disk.
func Templates(bp *blueprint.Blueprint) (fs.FS, error) {
	name := bp.Templates
	if embeddedSet(name) {
		return fs.Sub(scaffoldFS, path.Join("templates", name))
	}
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("template set %q not found", name)
	}
	return os.DirFS(name), nil
}

func embeddedSet(name string) bool {
	entries, err := fs.ReadDir(scaffoldFS, "templates")
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() && e.Name() == name {
			return true
		}
	}
	return false
}

// Plan reports the filter decision for every template path, in lexical order,
// without writing anything.
func Plan(bp *blueprint.Blueprint, a answers.Set) ([]filter.Decision, error) {
	tree, err := Templates(bp)
	if err != nil {
		return nil, err
	}
	paths, err := templatePaths(tree)
	if err != nil {
		return nil, err
	}
	out := make([]filter.Decision, len(paths))
	for i, p := range paths {
		out[i] = bp.Rules().Explain(p, a)
	}
	return out, nil
}

// Generate renders the files selected by the blueprint's filters into
// outputDir, which must be empty or absent.
func Generate(bp *blueprint.Blueprint, a answers.Set, outputDir string) (*Result, error) {
	tree, err := Templates(bp)
	if err != nil {
		return nil, err
	}
	paths, err := templatePaths(tree)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}
	data := templateData(bp, a)
	rules := bp.Rules()

	for _, rel := range paths {
		if !rules.ShouldInclude(rel, a) {
			result.Skipped = append(result.Skipped, rel)
			continue
		}

		tmplBytes, err := fs.ReadFile(tree, rel)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", rel, err)
		}

		tmpl, err := template.New(rel).Delims(leftDelim, rightDelim).Funcs(funcs).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", rel, err)
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, rel)
	}

	// Read the generated descriptor back the way mode commands will.
	if _, err := os.Stat(filepath.Join(outputDir, project.DescriptorFile)); err == nil {
		desc, err := project.LoadDescriptor(outputDir)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not read generated %s: %v", project.DescriptorFile, err))
		} else if desc.Name == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Generated %s has no name", project.DescriptorFile))
		}
	}

	return result, nil
}

// templatePaths lists every file of the tree as a slash-separated relative
// path, in lexical order.
func templatePaths(tree fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(tree, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking templates: %w", err)
	}
	return paths, nil
}

// templateData exposes the answers to templates. Every prompt key is present:
// unanswered checkbox prompts are an empty option map, other unanswered
// prompts are "".
func templateData(bp *blueprint.Blueprint, a answers.Set) map[string]interface{} {
	data := make(map[string]interface{}, len(bp.Prompts))
	for _, p := range bp.Prompts {
		if p.Type == blueprint.TypeCheckbox {
			data[p.Key] = map[string]bool{}
		} else {
			data[p.Key] = ""
		}
	}
	for k, v := range a.Data() {
		data[k] = v
	}
	return data
}

var funcs = template.FuncMap{
	"json": func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}
