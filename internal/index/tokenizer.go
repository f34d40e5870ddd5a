package index

import (
	"strings"

	"github.com/caneroj1/stemmer"
)

// Tokenize normalizes text into the index vocabulary: runs of ASCII
// letters and digits are lowercased and Porter-stemmed, everything else is
// a separator. The exact same function is applied at index time and query
// time so query terms can only ever hit index terms.
func Tokenize(content string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, StemToken(current.String()))
		current.Reset()
	}

	for _, r := range content {
		if isASCIIAlnum(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// StemToken lowercases and Porter-stems a single raw token.
// Note: stemmer.Stem returns uppercase, so we lowercase after.
func StemToken(token string) string {
	return strings.ToLower(stemmer.Stem(strings.ToLower(token)))
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
