package render

import (
	"fmt"
	"log"
	"strings"
)

type siteConfig struct {
	Title           string `yaml:"title"`
	HeaderTitleMain string `yaml:"header_title_main"`
	HeaderTitleSub  string `yaml:"header_title_sub"`
	FooterText      string `yaml:"footer_text"`
	HeaderLogo      string `yaml:"header_logo"`
	Lang            string `yaml:"lang"`
	Markdown        string `yaml:"markdown"`
}

type menuEntry struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type homeFrontMatter struct {
	Layout    string `yaml:"layout"`
	Title     string `yaml:"title"`
	Permalink string `yaml:"permalink"`
}

type featuredItem struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Image string `yaml:"image"`
	URL   string `yaml:"url"`
}

type featuredSection struct {
	Title string         `yaml:"title"`
	Items []featuredItem `yaml:"items"`
}

type homeFeatured struct {
	Sections []featuredSection `yaml:"sections"`
}

// maxFeaturedItems caps each home preview tile row.
const maxFeaturedItems = 6

// writeSiteConfig extracts the site logo, if any, and writes _config.yml.
func (r *Renderer) writeSiteConfig() error {
	logo := ""
	if id := r.site.LogoID; id != "" {
		data, ext, err := r.doc.Image(id)
		if err != nil {
			log.Printf("warning: skipping site logo %s: %v", id, err)
		} else {
			if ext == "" {
				ext = ".png"
			}
			name := "site-title-logo" + ext
			if err := writeFile(r.path("assets", "images", name), data); err != nil {
				return err
			}
			r.summary.Images++
			logo = "/assets/images/" + name
		}
	}

	cfg := siteConfig{
		Title:           r.site.Title,
		HeaderTitleMain: r.site.HeaderMain,
		HeaderTitleSub:  r.site.HeaderSub,
		FooterText:      r.site.FooterText,
		HeaderLogo:      logo,
		Lang:            "ru",
		Markdown:        "kramdown",
	}
	return writeYAML(r.path("_config.yml"), cfg)
}

// writeMenu writes _data/menu.yml with one label/url pair per section.
func (r *Renderer) writeMenu() error {
	entries := make([]menuEntry, 0, len(r.site.Sections))
	for _, sec := range r.site.Sections {
		entries = append(entries, menuEntry{
			Label: sec.Title,
			URL:   "/" + sec.Slug + "/",
		})
	}
	return writeYAML(r.path("_data", "menu.yml"), entries)
}

// writeHome writes index.md from the «контент» blocks, extracting any
// embedded images into assets/images/home/.
func (r *Renderer) writeHome() error {
	var lines []string
	counter := 0

	for _, block := range r.site.HomeBlocks {
		if block.Text != "" {
			lines = append(lines, block.Text, "")
		}
		for _, id := range block.ImageIDs {
			data, ext, err := r.doc.Image(id)
			if err != nil {
				log.Printf("warning: skipping home image %s: %v", id, err)
				continue
			}
			if ext == "" {
				ext = ".jpg"
			}
			counter++
			name := fmt.Sprintf("home-content-%d%s", counter, ext)
			if err := writeFile(r.path("assets", "images", "home", name), data); err != nil {
				return err
			}
			r.summary.Images++
			lines = append(lines, fmt.Sprintf("![Иллюстрация](/assets/images/home/%s)", name), "")
		}
	}

	body := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	meta := homeFrontMatter{Layout: "home", Title: r.site.HomeTitle, Permalink: "/"}
	return writePage(r.path("index.md"), meta, body)
}

// writeHomeFeatured writes _data/home_featured.yml: preview tiles for the
// sections marked on the home page.
func (r *Renderer) writeHomeFeatured() error {
	featured := homeFeatured{Sections: []featuredSection{}}

	for _, sec := range r.site.FeaturedSections() {
		items := sec.Items
		if len(items) > maxFeaturedItems {
			items = items[:maxFeaturedItems]
		}

		fs := featuredSection{Title: sec.Title, Items: []featuredItem{}}
		for _, it := range items {
			fi := featuredItem{Title: it.Title, Date: it.DateRaw, URL: it.DetailURL}
			if len(it.ImagePaths) > 0 {
				fi.Image = it.ImagePaths[0]
			}
			fs.Items = append(fs.Items, fi)
		}
		if len(fs.Items) > 0 {
			featured.Sections = append(featured.Sections, fs)
		}
	}

	return writeYAML(r.path("_data", "home_featured.yml"), featured)
}
