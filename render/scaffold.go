package render

import (
	"embed"
	"os"
	"sort"
)

//go:embed assets
var scaffoldFS embed.FS

// scaffoldFiles maps embedded assets to their site locations. These are the
// supporting files the Jekyll build needs; the document never changes them.
var scaffoldFiles = map[string]string{
	"assets/base.html":        "_layouts/base.html",
	"assets/page.html":        "_layouts/page.html",
	"assets/home.html":        "_layouts/home.html",
	"assets/menu_list.html":   "_layouts/menu_list.html",
	"assets/menu_detail.html": "_layouts/menu_detail.html",
	"assets/site.css":         "assets/css/site.css",
}

// writeScaffold copies any missing layout or CSS file into the output tree.
// Existing files are never overwritten, so local edits survive re-runs.
func (r *Renderer) writeScaffold() error {
	srcs := make([]string, 0, len(scaffoldFiles))
	for src := range scaffoldFiles {
		srcs = append(srcs, src)
	}
	sort.Strings(srcs)

	for _, src := range srcs {
		target := r.path(scaffoldFiles[src])
		if _, err := os.Stat(target); err == nil {
			continue
		}

		data, err := scaffoldFS.ReadFile(src)
		if err != nil {
			return err
		}
		if err := writeFile(target, data); err != nil {
			return err
		}
	}
	return nil
}
