package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safespace/client/internal/maps"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show risk-classified map pins for all listings",
	Long: "Prints one pin per known property with its derived risk level, plus the " +
		"viewport the map would open on. Pins always cover every property, " +
		"independent of any listing filters.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		properties, err := client.GetProperties(ctx)
		if err != nil {
			return err
		}

		projector := maps.Projector{Thresholds: pipeline.Thresholds()}
		locations := projector.FromProperties(properties)
		viewport := maps.FitViewport(locations)

		fmt.Printf("Viewport: center %.4f, %.4f (zoom %d)\n\n",
			viewport.Center[0], viewport.Center[1], viewport.Zoom)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PIN\tLAT\tLON\tRISK")
		for _, loc := range locations {
			fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\n",
				loc.Name, loc.Position[0], loc.Position[1], loc.RiskLevel)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
