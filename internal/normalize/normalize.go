// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes bibliographic text fields for comparison.
// Every function maps empty or unusable input to the empty string, and an
// empty canonical form must never be used as a matching key.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Title lowercases, strips punctuation, and collapses whitespace runs so
// that near-identical titles compare equal character for character.
func Title(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var abstractLabel = regexp.MustCompile(`(?i)^\s*(abstract:?|summary:?)\s*`)

// Abstract lowercases and collapses whitespace, stripping a leading
// "abstract:" or "summary:" label if present.
func Abstract(s string) string {
	s = abstractLabel.ReplaceAllString(s, "")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

var (
	identifierPrefix = regexp.MustCompile(`^(doi:|pmid:)`)
	identifierURL    = regexp.MustCompile(`^https?://.*?/`)
)

// Identifier canonicalizes a DOI or PMID: trimmed, lowercased, with
// "doi:"/"pmid:" prefixes and URL forms (https://doi.org/...) removed.
// An empty result means the article has no usable identifier; grouping by
// an empty identifier would collapse unrelated articles, so callers must
// skip empty keys.
func Identifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = identifierPrefix.ReplaceAllString(s, "")
	s = identifierURL.ReplaceAllString(s, "")
	return s
}

// stripMarks removes combining marks after NFD decomposition, so accented
// and plain spellings canonicalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// LocationName canonicalizes a gazetteer name: Unicode-decompose, drop
// diacritics, lowercase, trim. "François Lake" and "Francois Lake" map to
// the same form.
func LocationName(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	// Decomposition leaves any non-ASCII bytes that were not combining
	// marks; drop them the way an ASCII re-encode would.
	var b strings.Builder
	for _, r := range out {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// FirstAuthorSurname extracts the lowercased surname of the first author.
// It accepts both "Surname, Given" and "Given Surname" forms: the segment
// before the first comma is taken, and its last whitespace token is the
// surname.
func FirstAuthorSurname(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	first := strings.TrimSpace(authors[0])
	if first == "" {
		return ""
	}
	if idx := strings.Index(first, ","); idx >= 0 {
		first = first[:idx]
	}
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

// Journal canonicalizes a journal name the same way Title does.
func Journal(s string) string {
	return Title(s)
}
