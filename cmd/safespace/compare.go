package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safespace/client/internal/compare"
	"safespace/client/internal/notify"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Manage and view the side-by-side comparison list",
}

var compareShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the comparison table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		items, err := client.GetCompareList(ctx, cfg.UserID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Your comparison list is empty.")
			return nil
		}

		properties, err := client.GetProperties(ctx)
		if err != nil {
			return err
		}

		resolved := compare.Resolve(items, properties)
		if len(resolved) == 0 {
			fmt.Println("No listings in your comparison list are available any more.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		titles := make([]string, 0, len(resolved))
		for _, p := range resolved {
			titles = append(titles, p.Title)
		}
		fmt.Fprintf(w, "\t%s\n", strings.Join(titles, "\t"))

		for _, row := range compare.Rows(resolved) {
			fmt.Fprintf(w, "%s\t%s\n", row.Label, strings.Join(row.Values, "\t"))
		}
		w.Flush()
		return nil
	},
}

var compareAddCmd = &cobra.Command{
	Use:   "add <property-id>",
	Short: "Add a property to the comparison list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		propertyID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid property id %q", args[0])
		}

		toasts := notify.NewService(logger, os.Stdout, 0)

		property, err := client.GetProperty(ctx, propertyID)
		if err != nil {
			toasts.NotifyError("Error", "Could not add property to comparison list. Please try again.")
			return err
		}

		if _, err := client.AddToCompare(ctx, cfg.UserID, propertyID); err != nil {
			toasts.NotifyError("Error", "Could not add property to comparison list. Please try again.")
			return err
		}

		toasts.Notify("Added to Compare", fmt.Sprintf("%s has been added to your comparison list.", property.Title))
		return nil
	},
}

var compareRemoveCmd = &cobra.Command{
	Use:   "remove <property-id>",
	Short: "Remove a property from the comparison list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		propertyID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid property id %q", args[0])
		}

		toasts := notify.NewService(logger, os.Stdout, 0)

		items, err := client.GetCompareList(ctx, cfg.UserID)
		if err != nil {
			toasts.NotifyError("Error", "Could not remove the property from your comparison list.")
			return err
		}

		item, ok := compare.ItemFor(items, propertyID)
		if !ok {
			toasts.NotifyError("Error", "Property not found in comparison list.")
			return nil
		}

		if err := client.RemoveFromCompare(ctx, item.ID); err != nil {
			toasts.NotifyError("Error", "Could not remove the property from your comparison list.")
			return err
		}

		toasts.Notify("Property removed", "The property has been removed from your comparison list.")
		return nil
	},
}

func init() {
	compareCmd.AddCommand(compareShowCmd, compareAddCmd, compareRemoveCmd)
	rootCmd.AddCommand(compareCmd)
}
