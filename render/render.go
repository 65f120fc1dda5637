// Package render writes the generated Jekyll tree: scaffold layouts, the
// site configuration, data files, the home page, per-entry detail pages,
// paginated listings, and extracted image assets. All output paths derive
// deterministically from the document, so re-running on unchanged input
// reproduces the tree byte for byte. Files from removed entries are not
// cleaned up; stale output is an accepted limitation of the batch model.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"docsite/config"
	"docsite/docx"
	"docsite/site"
)

// Summary reports what a conversion run produced.
type Summary struct {
	Sections    int
	Items       int
	DetailPages int
	Images      int
}

// Renderer holds one run's state.
type Renderer struct {
	cfg  config.Config
	doc  *docx.Document
	site *site.Site

	summary Summary
}

// Run writes the whole site tree under cfg.OutputRoot.
func Run(cfg config.Config, doc *docx.Document, s *site.Site) (Summary, error) {
	r := &Renderer{cfg: cfg, doc: doc, site: s}

	if err := r.writeScaffold(); err != nil {
		return r.summary, err
	}
	if err := r.writeSiteConfig(); err != nil {
		return r.summary, err
	}
	if err := r.writeMenu(); err != nil {
		return r.summary, err
	}
	if err := r.writeHome(); err != nil {
		return r.summary, err
	}
	for _, sec := range s.Sections {
		if err := r.renderSection(sec); err != nil {
			return r.summary, err
		}
	}
	// Featured tiles reference detail URLs and image paths, so sections
	// must already be rendered.
	if err := r.writeHomeFeatured(); err != nil {
		return r.summary, err
	}

	return r.summary, nil
}

// path joins parts under the configured output root.
func (r *Renderer) path(parts ...string) string {
	return filepath.Join(append([]string{r.cfg.OutputRoot}, parts...)...)
}

// writeFile writes data at path, creating parent directories as needed and
// overwriting any existing file.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writePage writes a Jekyll page: YAML front matter followed by a Markdown
// body. Front matter structs marshal in field order, keeping output stable.
func writePage(path string, meta any, body string) error {
	fm, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal front matter for %s: %w", path, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return writeFile(path, buf.Bytes())
}

// writeYAML writes a bare YAML data file (for _data/).
func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return writeFile(path, data)
}
