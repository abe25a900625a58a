// Package stats flattens search pages and computes frequency tables over them.
package stats

import (
	"github.com/NivBraz/trendstats/internal/models"
	"github.com/NivBraz/trendstats/pkg/counter"
	"github.com/NivBraz/trendstats/pkg/parser"
)

const (
	CategoryHashtag    = "Hashtag"
	CategoryScreenName = "Screen Name"
	CategoryWord       = "Word"
	CategorySource     = "Source"

	// DefaultTop is the number of rows reported per category.
	DefaultTop = 9
)

// Statistics holds the flattened lists of every status across all pages.
type Statistics struct {
	Texts       []string
	Hashtags    []string
	ScreenNames []string
	Words       []string
	Sources     []string

	pages int
}

func New(pages []models.Page) *Statistics {
	s := &Statistics{pages: len(pages)}
	for _, page := range pages {
		for _, status := range page.Statuses {
			text := status.Content()
			s.Texts = append(s.Texts, text)
			s.Words = append(s.Words, parser.Words(text)...)

			for _, hashtag := range status.Entities.Hashtags {
				s.Hashtags = append(s.Hashtags, hashtag.Text)
			}
			for _, mention := range status.Entities.UserMentions {
				if mention.ScreenName != "" {
					s.ScreenNames = append(s.ScreenNames, mention.ScreenName)
				}
			}
			if source := parser.SourceName(status.Source); source != "" {
				s.Sources = append(s.Sources, source)
			}
		}
	}
	return s
}

// Report builds the top n table of each category. The most frequent word is
// left out since it mirrors the query itself.
func (s *Statistics) Report(n int) models.Report {
	if n <= 0 {
		n = DefaultTop
	}
	return models.Report{
		Pages:  s.pages,
		Tweets: len(s.Texts),
		Tables: []models.Table{
			{Category: CategoryHashtag, Items: counter.FromItems(s.Hashtags).Top(n, 0)},
			{Category: CategoryScreenName, Items: counter.FromItems(s.ScreenNames).Top(n, 0)},
			{Category: CategoryWord, Items: counter.FromItems(s.Words).Top(n, 1)},
			{Category: CategorySource, Items: counter.FromItems(s.Sources).Top(n, 0)},
		},
	}
}
