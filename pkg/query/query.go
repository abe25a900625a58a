// pkg/query/query.go
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/NivBraz/trendstats/internal/constants"
	"github.com/NivBraz/trendstats/internal/models"
	"github.com/NivBraz/trendstats/pkg/fetcher"
)

const (
	trendsPath = "/trends/place.json"
	searchPath = "/search/tweets.json"

	WOEIDUnitedStates int64 = 23424977
	WOEIDWorld        int64 = 1
)

var woeids = map[string]int64{
	"US":    WOEIDUnitedStates,
	"WORLD": WOEIDWorld,
}

// WOEID resolves a region name or a numeric id, falling back to the United States.
func WOEID(region string) int64 {
	if id, ok := woeids[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return id
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(region), 10, 64); err == nil && id > 0 {
		return id
	}
	return WOEIDUnitedStates
}

type Config struct {
	BaseURL    string
	Count      int
	TweetMode  string
	MaxBatches int
	// Progress receives the batch progress bar; nil discards it.
	Progress io.Writer
}

type Client struct {
	fetcher *fetcher.Fetcher
	config  Config
}

func New(f *fetcher.Fetcher, config Config) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Count <= 0 {
		config.Count = 100
	}
	if config.MaxBatches <= 0 {
		config.MaxBatches = 5
	}
	if config.Progress == nil {
		config.Progress = io.Discard
	}
	return &Client{fetcher: f, config: config}
}

// Trends returns the trends for a location.
func (c *Client) Trends(ctx context.Context, woeid int64) ([]models.TrendsList, error) {
	params := url.Values{"id": {strconv.FormatInt(woeid, 10)}}
	body, err := c.fetcher.Fetch(ctx, c.config.BaseURL+trendsPath+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trends: %w", err)
	}

	var lists []models.TrendsList
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse trends: %w", err)
	}
	return lists, nil
}

// Search fetches a single page of search results.
func (c *Client) Search(ctx context.Context, params url.Values) (models.Page, error) {
	var page models.Page

	body, err := c.fetcher.Fetch(ctx, c.config.BaseURL+searchPath+"?"+params.Encode())
	if err != nil {
		return page, fmt.Errorf("failed to fetch search results: %w", err)
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return page, fmt.Errorf("failed to parse search results: %w", err)
	}
	return page, nil
}

// Collect walks the search results for term, following next_results until
// it runs out or MaxBatches pages are held. Pages are returned in fetch
// order. When a request fails the pages gathered so far are returned with
// the error.
func (c *Client) Collect(ctx context.Context, term string) ([]models.Page, error) {
	params := url.Values{
		"q":     {term},
		"count": {strconv.Itoa(c.config.Count)},
	}
	if c.config.TweetMode != "" {
		params.Set("tweet_mode", c.config.TweetMode)
	}

	bar := progressbar.NewOptions(c.config.MaxBatches,
		progressbar.OptionSetWriter(c.config.Progress),
		progressbar.OptionSetDescription("Fetching batches..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	pages := make([]models.Page, 0, c.config.MaxBatches)
	for len(pages) < c.config.MaxBatches {
		page, err := c.Search(ctx, params)
		if err != nil {
			return pages, fmt.Errorf("batch %d: %w", len(pages)+1, err)
		}
		pages = append(pages, page)
		bar.Add(1)

		log.Debug().
			Str(constants.LogQuery, term).
			Int(constants.LogBatch, len(pages)).
			Int(constants.LogTweetNumber, len(page.Statuses)).
			Msg("Got batch")

		next, ok := NextParams(page)
		if !ok {
			log.Debug().Str(constants.LogQuery, term).Msg("No more tweets")
			break
		}
		if c.config.TweetMode != "" {
			next.Set("tweet_mode", c.config.TweetMode)
		}
		params = next
	}

	return pages, nil
}

// NextParams decodes the continuation of a page. It reports false when the
// page has none or when the continuation cannot be decoded.
func NextParams(page models.Page) (url.Values, bool) {
	if page.SearchMetadata == nil {
		return nil, false
	}

	raw := strings.TrimPrefix(strings.TrimSpace(page.SearchMetadata.NextResults), "?")
	if raw == "" {
		return nil, false
	}
	for _, pair := range strings.Split(raw, "&") {
		if strings.Count(pair, "=") != 1 || strings.HasPrefix(pair, "=") {
			return nil, false
		}
	}

	values, err := url.ParseQuery(raw)
	if err != nil || len(values) == 0 {
		return nil, false
	}
	return values, true
}
