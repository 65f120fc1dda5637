package site

import "fmt"

// Page is one window of a section's listing. Pages are numbered from 1; the
// first page lives at the section's base URL and later pages under
// page/<n>/.
type Page struct {
	// Number is the 1-based page number.
	Number int
	// Total is the section's page count.
	Total int
	// Items is the page's window, at most the configured page size.
	Items []*Item

	URL     string
	BaseURL string
	// PrevURL and NextURL point at the immediate neighbors only; empty on
	// the first and last page respectively.
	PrevURL string
	NextURL string
}

// Paginate slices items into pages of at most size entries. The first page
// is always present, even for an empty section.
func Paginate(sectionSlug string, items []*Item, size int) []Page {
	total := (len(items) + size - 1) / size
	if total < 1 {
		total = 1
	}

	base := "/" + sectionSlug + "/"
	pageURL := func(n int) string {
		if n <= 1 {
			return base
		}
		return fmt.Sprintf("%spage/%d/", base, n)
	}

	pages := make([]Page, 0, total)
	for n := 1; n <= total; n++ {
		offset := (n - 1) * size
		end := min(offset+size, len(items))

		p := Page{
			Number:  n,
			Total:   total,
			BaseURL: base,
			URL:     pageURL(n),
		}
		if offset < len(items) {
			p.Items = items[offset:end]
		}
		if n > 1 {
			p.PrevURL = pageURL(n - 1)
		}
		if n < total {
			p.NextURL = pageURL(n + 1)
		}
		pages = append(pages, p)
	}
	return pages
}
