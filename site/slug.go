package site

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps slug length so titles pasted from the document cannot
// produce unwieldy paths.
const maxSlugLen = 80

// cyrMap transliterates Russian letters into filesystem-safe Latin.
var cyrMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Slugify derives a stable, filesystem-safe identifier from a title:
// lowercased, Cyrillic transliterated, accented Latin decomposed to its base
// letters, runs of anything else collapsed to single hyphens, truncated to
// maxSlugLen. The fallback is returned when nothing survives.
func Slugify(title, fallback string) string {
	lowered := norm.NFD.String(strings.ToLower(title))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from NFD decomposition.
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if tr, ok := cyrMap[r]; ok {
				b.WriteString(tr)
			} else {
				b.WriteByte(' ')
			}
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return fallback
	}
	return slug
}
