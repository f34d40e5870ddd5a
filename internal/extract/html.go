// Package extract turns raw HTML into the plain text the tokenizer consumes.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text extracts the visible text of an HTML page. Script, style and
// noscript subtrees are dropped; all remaining text is joined with single
// spaces and trimmed. Parse failures degrade to treating the input as
// plain text rather than losing the document.
func Text(html []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return collapse(string(html))
	}

	doc.Find("script, style, noscript").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	// collect text nodes in document order so adjacent elements stay
	// separated by a space
	var parts []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				parts = append(parts, c.Text())
			} else {
				walk(c)
			}
		})
	}
	walk(doc.Selection)

	return collapse(strings.Join(parts, " "))
}

// collapse normalizes all whitespace runs to a single space and trims the ends
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
