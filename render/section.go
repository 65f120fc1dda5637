package render

import (
	"fmt"
	"log"
	"strconv"

	"docsite/site"
)

type detailFrontMatter struct {
	Layout    string   `yaml:"layout"`
	Title     string   `yaml:"title"`
	Permalink string   `yaml:"permalink"`
	Images    []string `yaml:"images"`
}

type listingItem struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Excerpt string `yaml:"excerpt"`
	URL     string `yaml:"url"`
	Image   string `yaml:"image"`
}

type listingFrontMatter struct {
	Layout      string        `yaml:"layout"`
	Title       string        `yaml:"title"`
	Permalink   string        `yaml:"permalink"`
	BaseURL     string        `yaml:"base_url"`
	CurrentPage int           `yaml:"current_page"`
	TotalPages  int           `yaml:"total_pages"`
	PrevURL     string        `yaml:"prev_url"`
	NextURL     string        `yaml:"next_url"`
	Items       []listingItem `yaml:"items"`
}

// renderSection writes a section's image assets, detail pages, and listing
// pages. Items with at least one extracted image get a detail page; the
// rest appear in listings only.
func (r *Renderer) renderSection(sec *site.Section) error {
	r.summary.Sections++

	for _, item := range sec.Items {
		r.summary.Items++

		paths, err := r.extractItemImages(sec, item)
		if err != nil {
			return err
		}
		item.ImagePaths = paths
		if len(paths) == 0 {
			continue
		}

		item.DetailURL = fmt.Sprintf("/%s/%s/", sec.Slug, item.Slug)
		meta := detailFrontMatter{
			Layout:    "menu_detail",
			Title:     item.Title,
			Permalink: item.DetailURL,
			Images:    paths,
		}
		if err := writePage(r.path(sec.Slug, item.Slug, "index.md"), meta, item.Body); err != nil {
			return err
		}
		r.summary.DetailPages++
	}

	for _, page := range site.Paginate(sec.Slug, sec.Items, r.cfg.PageSize) {
		meta := listingFrontMatter{
			Layout:      "menu_list",
			Title:       sec.Title,
			Permalink:   page.URL,
			BaseURL:     page.BaseURL,
			CurrentPage: page.Number,
			TotalPages:  page.Total,
			PrevURL:     page.PrevURL,
			NextURL:     page.NextURL,
			Items:       []listingItem{},
		}
		for _, it := range page.Items {
			li := listingItem{
				Title:   it.Title,
				Date:    it.DateRaw,
				Excerpt: it.Excerpt,
				URL:     it.DetailURL,
			}
			if len(it.ImagePaths) > 0 {
				li.Image = it.ImagePaths[0]
			}
			meta.Items = append(meta.Items, li)
		}

		target := r.path(sec.Slug, "index.md")
		if page.Number > 1 {
			target = r.path(sec.Slug, "page", strconv.Itoa(page.Number), "index.md")
		}
		if err := writePage(target, meta, ""); err != nil {
			return err
		}
	}

	return nil
}

// extractItemImages writes an item's images into assets/images/news/ and
// returns their site paths. An image that cannot be read is skipped with a
// warning; its sequence number is kept so the remaining names stay stable.
func (r *Renderer) extractItemImages(sec *site.Section, item *site.Item) ([]string, error) {
	var paths []string
	for i, relID := range item.ImageIDs {
		data, ext, err := r.doc.Image(relID)
		if err != nil {
			log.Printf("warning: skipping image %s of %q: %v", relID, item.Title, err)
			continue
		}
		if ext == "" {
			ext = ".jpg"
		}

		name := fmt.Sprintf("%s-%s-%d%s", sec.Slug, item.Slug, i+1, ext)
		if err := writeFile(r.path("assets", "images", "news", name), data); err != nil {
			return nil, err
		}
		r.summary.Images++
		paths = append(paths, "/assets/images/news/"+name)
	}
	return paths, nil
}
