package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NivBraz/trendstats/internal/config"
	"github.com/NivBraz/trendstats/internal/constants"
	"github.com/NivBraz/trendstats/internal/models"
	"github.com/NivBraz/trendstats/internal/output"
	"github.com/NivBraz/trendstats/internal/stats"
	"github.com/NivBraz/trendstats/pkg/fetcher"
	"github.com/NivBraz/trendstats/pkg/query"
)

// ErrNoTrends is returned when the location has no trend with a tweet volume.
var ErrNoTrends = errors.New("no trends with a tweet volume")

// App represents the main application
type App struct {
	config  *config.Config
	client  *query.Client
	printer *output.Printer
	in      *bufio.Reader
}

// Options carries the collaborators of an App. Zero values fall back to the
// process's standard streams and a plain HTTP client.
type Options struct {
	HTTPClient *http.Client
	In         *bufio.Reader
	Out        io.Writer
	Err        io.Writer
	// Progress receives the batch progress bar; nil discards it.
	Progress io.Writer
	Colors   bool
}

// New creates a new instance of the application
func New(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if opts.In == nil {
		opts.In = bufio.NewReader(os.Stdin)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	f := fetcher.New(fetcher.FetcherConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
		UserAgent:         cfg.HTTPClient.UserAgent,
		Client:            opts.HTTPClient,
	})

	client := query.New(f, query.Config{
		BaseURL:    cfg.API.BaseURL,
		Count:      cfg.API.Count,
		TweetMode:  cfg.API.TweetMode,
		MaxBatches: cfg.Query.MaxBatches,
		Progress:   opts.Progress,
	})

	return &App{
		config:  cfg,
		client:  client,
		printer: output.NewPrinter(opts.Out, opts.Err, opts.Colors),
		in:      opts.In,
	}, nil
}

// TopTrends returns the trends of the configured location that report a
// tweet volume, highest volume first.
func (a *App) TopTrends(ctx context.Context) ([]models.Trend, error) {
	woeid := query.WOEID(a.config.API.WOEID)
	lists, err := a.client.Trends(ctx, woeid)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("no trends returned for woeid %d", woeid)
	}

	var trends []models.Trend
	for _, trend := range lists[0].Trends {
		if trend.TweetVolume != nil {
			trends = append(trends, trend)
		}
	}
	sort.SliceStable(trends, func(i, j int) bool {
		return *trends[i].TweetVolume > *trends[j].TweetVolume
	})

	log.Debug().Int64(constants.LogWOEID, woeid).Int("trends", len(trends)).Msg("Trends loaded")
	return trends, nil
}

// ListTrends prints the trend list once.
func (a *App) ListTrends(ctx context.Context) error {
	trends, err := a.TopTrends(ctx)
	if err != nil {
		return err
	}
	a.printer.Trends(trends)
	return nil
}

// Analyze collects the pages for term, writes them out when configured and
// prints the report. Pagination failures are logged and the pages gathered
// before the failure are still analyzed.
func (a *App) Analyze(ctx context.Context, term string) (models.Report, error) {
	pages, err := a.client.Collect(ctx, term)
	if err != nil {
		log.Warn().Err(err).Str(constants.LogQuery, term).Int(constants.LogPages, len(pages)).
			Msg("Stopped paginating, continuing with the pages collected")
	}

	if a.config.Output.WriteFile {
		if err := query.WritePages(a.config.Output.File, pages); err != nil {
			log.Error().Err(err).Str(constants.LogFileName, a.config.Output.File).Msg("Cannot write tweets, ignored")
		} else {
			log.Info().Str(constants.LogFileName, a.config.Output.File).Int(constants.LogPages, len(pages)).Msg("Tweets written")
		}
	}

	report := stats.New(pages).Report(a.config.Output.TopCount)
	report.Query = term
	return report, a.Print(report)
}

// AnalyzeFile prints the report of a file written by a previous analysis.
func (a *App) AnalyzeFile(path string) (models.Report, error) {
	pages, err := query.ReadPages(path)
	if err != nil {
		return models.Report{}, err
	}
	report := stats.New(pages).Report(a.config.Output.TopCount)
	return report, a.Print(report)
}

// Print renders a report in the configured format.
func (a *App) Print(report models.Report) error {
	if a.config.Output.Format == "json" {
		return output.WriteJSON(a.printer.Out(), report)
	}
	if report.Query != "" {
		a.printer.Header(fmt.Sprintf("Statistics for %s (%d tweets in %d pages)", report.Query, report.Tweets, report.Pages))
	} else {
		a.printer.Header(fmt.Sprintf("Statistics (%d tweets in %d pages)", report.Tweets, report.Pages))
	}
	return output.RenderReport(a.printer.Out(), report)
}

// Run lists the trends and analyzes the ones the user picks until the input
// ends, the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	trends, err := a.TopTrends(ctx)
	if err != nil {
		return err
	}
	if len(trends) == 0 {
		return ErrNoTrends
	}

	for {
		a.printer.Trends(trends)
		a.printer.Print("\nWhat hashtag do you want to get statistics for? ")

		line, err := a.readLine(ctx)
		switch {
		case ctx.Err() != nil, errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		choice := strings.TrimSpace(line)
		if choice == "q" || choice == "quit" {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(trends) {
			a.printer.Warning(" ***** Choose hashtag between 1 and %d ***** \n", len(trends))
			continue
		}

		if _, err := a.Analyze(ctx, trends[n-1].Name); err != nil {
			log.Error().Err(err).Str(constants.LogQuery, trends[n-1].Name).Msg("Cannot print statistics")
			a.printer.Error("Cannot print statistics for %s: %v", trends[n-1].Name, err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// readLine reads one line of input without blocking past ctx.
func (a *App) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := a.in.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if errors.Is(r.err, io.EOF) && strings.TrimSpace(r.line) != "" {
			return r.line, nil
		}
		return r.line, r.err
	}
}
