// Package slug deriva identificadores únicos e legíveis para URLs a partir
// de nomes de exibição.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converte um nome em slug: minúsculas, sem acentos, sem caracteres
// especiais, espaços viram hífens. Determinística e idempotente.
func Make(name string) string {
	s := strings.ToLower(name)
	if normalized, _, err := transform.String(stripDiacritics, s); err == nil {
		s = normalized
	}
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
