package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/NivBraz/trendstats/internal/app"
	"github.com/NivBraz/trendstats/internal/auth"
	"github.com/NivBraz/trendstats/internal/config"
	"github.com/NivBraz/trendstats/internal/constants"
	"github.com/NivBraz/trendstats/internal/output"
)

type rootOptions struct {
	cfgFile   string
	credsFile string
	outFile   string
	noFile    bool
	batches   int
	woeid     string
	format    string
	verbose   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "trendstats",
		Short: "Frequency statistics over the tweets of a trending topic",
		Long: `trendstats lists the current trends of a location, lets you pick one,
pages through the search results for it and prints the most frequent
hashtags, mentioned users, words and clients.

Example usage:
  trendstats                          # interactive trend selection
  trendstats trends --woeid WORLD     # list worldwide trends
  trendstats search "#golang"         # analyze a single query
  trendstats stats tweets.txt         # statistics from a saved output file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, true)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", config.DefaultPath, "config file")
	flags.StringVar(&opts.credsFile, "creds", "", "credentials file (prompted for when empty)")
	flags.StringVarP(&opts.outFile, "out", "o", "", "file the raw search pages are written to")
	flags.BoolVar(&opts.noFile, "no-file", false, "do not write the raw search pages")
	flags.IntVarP(&opts.batches, "batches", "b", 0, "maximum number of search pages per query")
	flags.StringVar(&opts.woeid, "woeid", "", "trend location: US, WORLD or a numeric WOEID")
	flags.StringVar(&opts.format, "format", "", "report format: table or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newTrendsCmd(opts), newSearchCmd(opts), newStatsCmd(opts))
	return cmd
}

// load reads the config file, applies flag overrides and sets up logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.File = o.outFile
		cfg.Output.WriteFile = true
	}
	if o.noFile {
		cfg.Output.WriteFile = false
	}
	if flags.Changed("batches") {
		cfg.Query.MaxBatches = o.batches
	}
	if flags.Changed("woeid") {
		cfg.API.WOEID = o.woeid
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if o.verbose {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cmd.OutOrStdout(), cfg.Log.Level)
	o.cfg = cfg
	return nil
}

func (o *rootOptions) newApp(cmd *cobra.Command, withAuth bool) (*app.App, error) {
	in := bufio.NewReader(cmd.InOrStdin())
	appOpts := app.Options{
		In:       in,
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		Progress: cmd.ErrOrStderr(),
		Colors:   output.UseColors(),
	}

	if withAuth {
		creds, err := o.credentials(in, cmd.OutOrStdout())
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials: %w", err)
		}
		appOpts.HTTPClient = creds.Client(cmd.Context())
	}

	return app.New(o.cfg, appOpts)
}

func (o *rootOptions) credentials(in *bufio.Reader, out io.Writer) (auth.Credentials, error) {
	path := o.credsFile
	if path == "" {
		path = o.cfg.Auth.CredentialsFile
	}
	if path != "" {
		log.Debug().Str(constants.LogFileName, path).Msg("Reading credentials")
		return auth.LoadCredentials(path)
	}
	return auth.Prompt(in, out)
}

func initLog(w io.Writer, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(constants.LogLevelFallback)

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Err(err).Msgf("Log level not set, continue with %s...", constants.LogLevelFallback)
		return
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Debug().Msgf("Logger level set to '%s'", logLevel)
}
