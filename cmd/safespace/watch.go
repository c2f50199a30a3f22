package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"safespace/client/internal/listings"
	"safespace/client/internal/models"
	"safespace/client/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the API and reprint the view whenever fresh data lands",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		inputs := watch.Inputs{
			Filters:     listFilters(),
			SearchQuery: listSearch,
			SortMode:    models.SortMode(listSort),
		}

		watcher := watch.NewWatcher(client, pipeline, inputs, cfg.Watch.PollInterval, logger)
		watcher.Subscribe(func(view listings.View) {
			printListings(view)
			fmt.Println()
		})

		watcher.Start()
		<-ctx.Done()
		watcher.Stop()

		fmt.Fprintln(os.Stderr, "watch stopped")
		return nil
	},
}

func init() {
	watchCmd.Flags().AddFlagSet(listCmd.Flags())
	rootCmd.AddCommand(watchCmd)
}
