// Package sanitize turns host-supplied labels and keys into plain text and
// URL-safe identifiers.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strict drops every element. Script and style contents are dropped with them.
var strict = bluemonday.StrictPolicy()

// StripTags removes all markup from s and returns the trimmed plain text.
// Entities are decoded, so "Posts &amp; Pages" becomes "Posts & Pages".
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Field cleans a single-line form value: markup is stripped and every run of
// whitespace (including tabs and line breaks) collapses to one space.
func Field(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}

// Slug derives a stable identifier from s: markup and accents are removed,
// letters are lowercased, and every run of characters that are neither
// letters nor digits becomes a single hyphen. Leading and trailing hyphens
// are trimmed. Input without any letter or digit yields "".
//
//	Slug("Settings")                 == "settings"
//	Slug("edit.php?post_type=page")  == "edit-php-post-type-page"
//	Slug("Réglages généraux")        == "reglages-generaux"
//	Slug("Настройки сайта")          == "настроики-саита"
func Slug(s string) string {
	s = StripTags(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if isSlugRune(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
