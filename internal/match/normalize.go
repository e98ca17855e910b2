package match

import (
	"strings"
	"unicode"
)

// normalize lowercases text and turns punctuation into spaces. Apostrophes
// survive because the vocabulary carries contractions ("i'm fine").
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenize(text string) []string {
	return strings.Fields(normalize(text))
}

// letters extracts the alphabetic characters of a token, one glyph per
// element, for fingerspelling.
func letters(token string) []string {
	var out []string
	for _, r := range token {
		if unicode.IsLetter(r) {
			out = append(out, string(r))
		}
	}
	return out
}

func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
