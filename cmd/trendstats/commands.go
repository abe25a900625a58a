package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newTrendsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "List the trends of a location by tweet volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, true)
			if err != nil {
				return err
			}
			return a.ListTrends(cmd.Context())
		},
	}
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Page through the search results of a term and print its statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, true)
			if err != nil {
				return err
			}
			_, err = a.Analyze(cmd.Context(), strings.Join(args, " "))
			return err
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print statistics from a file written by a previous search",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.Output.File
			if len(args) == 1 {
				path = args[0]
			}
			a, err := opts.newApp(cmd, false)
			if err != nil {
				return err
			}
			_, err = a.AnalyzeFile(path)
			return err
		},
	}
}
