package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const (
	maxClaims       = 3
	minClaimLength  = 20 // Fragments must be strictly longer
	maxClaimLength  = 100
	truncatedLength = 97
	ellipsis        = "..."
)

// FallbackClaims is returned when no sentence survives filtering
var FallbackClaims = []string{
	"Content analysis completed",
	"Source verification performed",
}

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// Claims picks up to three sentences from the input to present as detected claims.
// Sentences of 20 characters or fewer are skipped; long ones are truncated.
func Claims(text string) []string {
	var claims []string

	for _, fragment := range sentenceTerminators.Split(text, -1) {
		sentence := strings.TrimSpace(fragment)
		if utf8.RuneCountInString(sentence) <= minClaimLength {
			continue
		}
		claims = append(claims, truncate(sentence))
		if len(claims) == maxClaims {
			break
		}
	}

	if len(claims) == 0 {
		return append([]string(nil), FallbackClaims...)
	}

	return claims
}

// truncate shortens a sentence longer than 100 characters to 97 plus an ellipsis
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxClaimLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:truncatedLength]) + ellipsis
}

// VisibleText extracts text nodes from pasted HTML, skipping scripts/styles
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String(), nil
}
