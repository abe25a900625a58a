// pkg/parser/parser.go
package parser

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/NivBraz/trendstats/internal/models"
)

// CleanText decodes the HTML entities the search API leaves in tweet text
func CleanText(text string) string {
	return html.UnescapeString(text)
}

// Words splits tweet text on whitespace
func Words(text string) []string {
	return strings.Fields(CleanText(text))
}

// SourceName extracts the client name from a status source, which the API
// sends as an HTML anchor such as <a href="..." rel="nofollow">Twitter Web App</a>
func SourceName(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	if !strings.Contains(source, "<") {
		return CleanText(source)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return ""
	}

	anchor := doc.Find("a").First()
	if anchor.Length() > 0 {
		return strings.TrimSpace(anchor.Text())
	}
	return strings.TrimSpace(doc.Text())
}

// SortItemCounts sorts item counts by frequency (descending) and alphabetically for ties
func SortItemCounts(items []models.ItemCount) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Item < items[j].Item
		}
		return items[i].Count > items[j].Count
	})
}
