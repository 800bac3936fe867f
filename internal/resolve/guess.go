// Package resolve turns noisy media file names into catalog metadata by
// querying a remote catalog provider and disambiguating candidates against
// the locally probed runtime.
package resolve

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphaPattern = regexp.MustCompile(`[^a-zA-Z]+`)
	episodePattern  = regexp.MustCompile(`(?i)S\d{1,2}E\d{1,2}`)
)

// GuessTitle extracts a search-friendly title from a release-style file name:
// strip everything non-alphabetic, title-case the remaining words, keep at
// most the first three, and drop a trailing word of two characters or fewer
// (truncated tokens such as edition tags).
func GuessTitle(name string) string {
	caser := cases.Title(language.English)
	words := strings.Fields(nonAlphaPattern.ReplaceAllString(name, " "))
	if len(words) > 3 {
		words = words[:3]
	}
	for i, word := range words {
		words[i] = caser.String(strings.ToLower(word))
	}
	if n := len(words); n > 0 && len(words[n-1]) <= 2 {
		words = words[:n-1]
	}
	return strings.Join(words, " ")
}

// IsShow reports whether the file name carries a season/episode marker such
// as "S02E05".
func IsShow(name string) bool {
	return episodePattern.MatchString(name)
}

// normalizeTitle prepares a title for fuzzy comparison: lowercase, accents
// removed, punctuation stripped, whitespace collapsed.
func normalizeTitle(title string) string {
	s := removeAccents(strings.ToLower(title))

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
