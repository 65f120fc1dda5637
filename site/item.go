package site

import (
	"fmt"
	"strings"

	"docsite/docx"
)

// maxExcerptLen caps listing excerpts.
const maxExcerptLen = 240

// BuildItems splits a section's paragraphs into items. A heading-3 opens an
// item; a heading-4 starting with «Дата» carries the publish date, either
// inline or in the following paragraph; everything else joins the current
// item's body and image list. A section with content but no heading-3
// yields a single item titled after the section.
func BuildItems(sectionTitle, sectionSlug string, paragraphs []docx.Paragraph) []*Item {
	var items []*Item

	var (
		title       string
		bodyParts   []string
		imageIDs    []string
		dateRaw     string
		waitingDate bool
	)

	flush := func() {
		if title == "" {
			return
		}
		var kept []string
		for _, part := range bodyParts {
			if part != "" {
				kept = append(kept, part)
			}
		}
		body := strings.TrimSpace(strings.Join(kept, "\n\n"))

		item := &Item{
			Index:    len(items) + 1,
			Title:    title,
			Body:     body,
			ImageIDs: imageIDs,
			DateRaw:  dateRaw,
			Excerpt:  excerpt(body),
		}
		item.Slug = Slugify(title, fmt.Sprintf("%s-item-%d", sectionSlug, item.Index))
		item.Date, item.Dated = ParseDate(dateRaw)
		items = append(items, item)

		title = ""
		bodyParts = nil
		imageIDs = nil
		dateRaw = ""
		waitingDate = false
	}

	for _, p := range paragraphs {
		level := docx.HeadingLevel(p.Style)

		if level == 3 && p.Text != "" {
			flush()
			title = p.Text
			continue
		}

		if level == 4 && p.Text != "" {
			if isDate, inline := parseDateHeading(p.Text); isDate {
				if inline != "" {
					dateRaw = inline
					waitingDate = false
				} else {
					waitingDate = true
				}
				continue
			}
		}

		if title == "" {
			// Section without a heading-3 still forms a single item.
			title = sectionTitle
		}

		if waitingDate && p.Text != "" {
			dateRaw = p.Text
			waitingDate = false
			continue
		}

		if p.Text != "" {
			bodyParts = append(bodyParts, p.Text)
		}
		for _, id := range p.ImageIDs {
			if !containsString(imageIDs, id) {
				imageIDs = append(imageIDs, id)
			}
		}
	}
	flush()

	return items
}

// parseDateHeading recognizes a heading-4 of the form «Дата: 12.08.2024»
// or a bare «Дата» whose value follows in the next paragraph.
func parseDateHeading(text string) (isDate bool, inline string) {
	if !strings.HasPrefix(normalizeKey(text), "дата") {
		return false, ""
	}
	runes := []rune(text)
	return true, strings.Trim(string(runes[len([]rune("дата")):]), " :.-")
}

// excerpt takes the first body paragraph, truncated to maxExcerptLen.
func excerpt(body string) string {
	first := body
	if i := strings.Index(body, "\n\n"); i >= 0 {
		first = body[:i]
	}
	first = strings.TrimSpace(first)

	runes := []rune(first)
	if len(runes) > maxExcerptLen {
		return strings.TrimSpace(string(runes[:maxExcerptLen-3])) + "..."
	}
	return first
}
