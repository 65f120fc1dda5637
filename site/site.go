// Package site is the pure domain layer: it turns the ordered paragraph
// blocks of a parsed document into a site model -- menu sections and their
// dated items -- and provides slug derivation, date parsing, ordering, and
// pagination. Nothing here touches the filesystem.
package site

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"docsite/docx"
)

// Document sections with reserved meaning. The source document is written
// in Russian, so the marker headings are too.
const (
	keyMenu    = "меню"
	keyContent = "контент"
	keyTitle   = "название"
	keyNews    = "новости"

	// footerSection is an internal marker, never a real section key.
	footerSection = "__footer__"
)

// Item is one entry of a menu section: a dated piece of content with an
// optional image gallery and its own detail page.
type Item struct {
	// Index is the 1-based position within the section in document order.
	Index int
	Title string
	// Body holds the entry's paragraphs joined by blank lines -- already
	// valid Markdown.
	Body string
	// ImageIDs are document relationship IDs, order-preserving and
	// deduplicated.
	ImageIDs []string

	// DateRaw is the display string taken from the document verbatim.
	DateRaw string
	// Date is the parsed publish date; meaningful only when Dated is true.
	Date  time.Time
	Dated bool

	Excerpt string
	Slug    string

	// DetailURL and ImagePaths are filled in by the renderer once assets
	// have been written.
	DetailURL  string
	ImagePaths []string
}

// Section is one menu entry and the items listed under it.
type Section struct {
	Title string
	Slug  string
	Items []*Item
}

// Site is everything recovered from the source document.
type Site struct {
	// HomeTitle is the first paragraph of the document.
	HomeTitle string
	// Title, HeaderMain, HeaderSub come from the «название» section.
	Title      string
	HeaderMain string
	HeaderSub  string
	// FooterText comes from the footer section, lines joined with <br>.
	FooterText string
	// LogoID is the relationship ID of the site logo, empty when absent.
	LogoID string
	// HomeBlocks are the «контент» section's paragraphs.
	HomeBlocks []docx.Paragraph
	// Sections follow menu order.
	Sections []*Section
	// HomePreviewKeys are normalized titles of sections previewed on the
	// home page, in document order.
	HomePreviewKeys []string
}

// FeaturedSections resolves the home preview keys to their sections, in
// preview order. Keys with no matching section are skipped.
func (s *Site) FeaturedSections() []*Section {
	byKey := map[string]*Section{}
	for _, sec := range s.Sections {
		byKey[normalizeKey(sec.Title)] = sec
	}

	var out []*Section
	for _, key := range s.HomePreviewKeys {
		if sec, ok := byKey[key]; ok {
			out = append(out, sec)
		}
	}
	return out
}

// NewsSection returns the news section, or nil when the document has none.
func (s *Site) NewsSection() *Section {
	for _, sec := range s.Sections {
		if sec.Slug == "news" {
			return sec
		}
	}
	return nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isFooterKey matches the footer marker heading, including the misspelling
// that appears in real documents.
func isFooterKey(key string) bool {
	return strings.Contains(key, "нижний") &&
		(strings.Contains(key, "колонтитул") || strings.Contains(key, "колонтикул"))
}

// Build segments the document's paragraphs into the site model. The first
// paragraph names the home page; heading-1/2 blocks open sections; the
// reserved sections configure the menu, home content, site title, and
// footer; every other section becomes a menu section whose items are split
// on heading-3 blocks.
func Build(paragraphs []docx.Paragraph) (*Site, error) {
	if len(paragraphs) == 0 {
		return nil, errors.New("document has no content")
	}

	homeTitle := paragraphs[0].Text
	homeKey := normalizeKey(homeTitle)
	baseSections := map[string]bool{keyMenu: true, keyContent: true, keyTitle: true}

	var (
		menuItems       []string
		titleLines      []string
		titleImageIDs   []string
		footerLines     []string
		homeBlocks      []docx.Paragraph
		sectionParas    = map[string][]docx.Paragraph{}
		sectionTitles   = map[string]string{}
		sectionOrder    []string
		homePreviewKeys []string

		currentSection string
		currentH1      = homeKey
	)

	for _, p := range paragraphs[1:] {
		level := docx.HeadingLevel(p.Style)

		if p.Text != "" && level == 1 {
			currentH1 = normalizeKey(p.Text)
		}

		if p.Text != "" && (level == 1 || level == 2) {
			key := normalizeKey(p.Text)
			menuKeys := map[string]bool{}
			for _, name := range menuItems {
				menuKeys[normalizeKey(name)] = true
			}

			if level == 2 && currentH1 == homeKey && isFooterKey(key) {
				currentSection = footerSection
				continue
			}

			// An H2 under the home H1 that is neither reserved nor the
			// footer marks a section to preview on the home page.
			if level == 2 && currentH1 == homeKey && !baseSections[key] && !isFooterKey(key) {
				if !containsString(homePreviewKeys, key) {
					homePreviewKeys = append(homePreviewKeys, key)
				}
				currentSection = ""
				continue
			}

			isBase := level == 2 && baseSections[key]
			isDynamic := false
			if level == 1 {
				if len(menuKeys) > 0 {
					isDynamic = menuKeys[key]
				} else {
					isDynamic = key != homeKey && !baseSections[key]
				}
			} else if level == 2 && !baseSections[key] {
				// Older documents used H2 for section headers.
				isDynamic = menuKeys[key]
			}

			if isBase || isDynamic {
				currentSection = key
				if _, ok := sectionTitles[key]; !ok {
					sectionTitles[key] = p.Text
				}
				if !baseSections[key] {
					if _, ok := sectionParas[key]; !ok {
						sectionParas[key] = nil
						sectionOrder = append(sectionOrder, key)
					}
				}
				continue
			}
		}

		switch currentSection {
		case keyMenu:
			if docx.HeadingLevel(p.Style) == 3 && p.Text != "" {
				menuItems = append(menuItems, p.Text)
			}
		case keyTitle:
			if p.Text != "" {
				titleLines = append(titleLines, p.Text)
			}
			for _, id := range p.ImageIDs {
				if !containsString(titleImageIDs, id) {
					titleImageIDs = append(titleImageIDs, id)
				}
			}
		case keyContent:
			homeBlocks = append(homeBlocks, p)
		case footerSection:
			if p.Text != "" {
				footerLines = append(footerLines, p.Text)
			}
		default:
			if currentSection != "" {
				if _, ok := sectionParas[currentSection]; ok {
					sectionParas[currentSection] = append(sectionParas[currentSection], p)
				}
			}
		}
	}

	if len(menuItems) == 0 {
		for _, key := range sectionOrder {
			menuItems = append(menuItems, sectionTitles[key])
		}
	}

	s := &Site{
		HomeTitle:       homeTitle,
		HomeBlocks:      homeBlocks,
		HomePreviewKeys: homePreviewKeys,
	}

	var cleanTitleLines []string
	for _, line := range titleLines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleanTitleLines = append(cleanTitleLines, trimmed)
		}
	}
	s.Title = homeTitle
	s.HeaderMain = homeTitle
	if len(cleanTitleLines) > 0 {
		s.Title = cleanTitleLines[0]
		s.HeaderMain = cleanTitleLines[0]
	}
	if len(cleanTitleLines) > 1 {
		s.HeaderSub = strings.Join(cleanTitleLines[1:], "<br>")
	}
	var cleanFooterLines []string
	for _, line := range footerLines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleanFooterLines = append(cleanFooterLines, trimmed)
		}
	}
	s.FooterText = strings.Join(cleanFooterLines, "<br>")
	if len(titleImageIDs) > 0 {
		s.LogoID = titleImageIDs[0]
	}

	for i, name := range menuItems {
		key := normalizeKey(name)
		title := name
		if t, ok := sectionTitles[key]; ok {
			title = t
		}

		slug := "news"
		if key != keyNews {
			slug = Slugify(title, fmt.Sprintf("section-%d", i+1))
		}

		section := &Section{Title: title, Slug: slug}
		section.Items = BuildItems(title, slug, sectionParas[key])
		dedupeSlugs(section.Items)
		sortByDate(section.Items)
		s.Sections = append(s.Sections, section)
	}

	return s, nil
}

// sortByDate orders items newest first; undated items follow all dated ones
// and keep their document order, as do items sharing a date.
func sortByDate(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Dated != b.Dated {
			return a.Dated
		}
		if !a.Dated {
			return false
		}
		return a.Date.After(b.Date)
	})
}

// dedupeSlugs appends a numeric suffix to later occurrences of a repeated
// slug, in document order, so re-runs stay deterministic.
func dedupeSlugs(items []*Item) {
	seen := map[string]int{}
	for _, it := range items {
		n := seen[it.Slug]
		seen[it.Slug] = n + 1
		if n == 0 {
			continue
		}
		base := it.Slug
		for {
			candidate := fmt.Sprintf("%s-%d", base, n+1)
			if seen[candidate] == 0 {
				it.Slug = candidate
				seen[candidate] = 1
				break
			}
			n++
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
