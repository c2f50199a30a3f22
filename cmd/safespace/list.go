package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"safespace/client/internal/compare"
	"safespace/client/internal/listings"
	"safespace/client/internal/models"
)

var (
	listPropertyType string
	listMinPrice     float64
	listMaxPrice     float64
	listMinHdi       float64
	listSearch       string
	listSort         string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show listings matching the given filters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		properties, err := client.GetProperties(ctx)
		if err != nil {
			return err
		}
		neighborhoods, err := client.GetNeighborhoods(ctx)
		if err != nil {
			return err
		}

		view := pipeline.Derive(properties, neighborhoods, listFilters(), listSearch, models.SortMode(listSort))
		printListings(view)
		return nil
	},
}

func listFilters() models.FilterParams {
	return models.FilterParams{
		PropertyType: listPropertyType,
		MinPrice:     listMinPrice,
		MaxPrice:     listMaxPrice,
		MinHdi:       listMinHdi,
	}
}

func printListings(view listings.View) {
	if len(view.List) == 0 {
		fmt.Println("No properties found matching your criteria.")
		return
	}

	fmt.Printf("%d Properties Found\n\n", len(view.List))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCITY\tTYPE\tPRICE\tBEDS\tBATHS\tSQFT\tSAFETY\tHDI")
	for _, p := range view.List {
		hdi := "-"
		if p.HdiScore != nil {
			hdi = fmt.Sprintf("%.2f", *p.HdiScore)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%.1f\t%s\n",
			p.ID, p.Title, p.City, p.PropertyType,
			compare.FormatPrice(p.Price), p.Beds, p.Baths, p.Sqft, p.SafetyScore, hdi)
	}
	w.Flush()
}

func init() {
	listCmd.Flags().StringVar(&listPropertyType, "type", "", "property type (House, Apartment, Land)")
	listCmd.Flags().Float64Var(&listMinPrice, "min-price", 0, "minimum price")
	listCmd.Flags().Float64Var(&listMaxPrice, "max-price", 0, "maximum price")
	listCmd.Flags().Float64Var(&listMinHdi, "min-hdi", 0, "minimum HDI score")
	listCmd.Flags().StringVar(&listSearch, "search", "", "search address, city and title")
	listCmd.Flags().StringVar(&listSort, "sort", string(models.SortSafety), "sort mode: price_low, price_high, safety, hdi")

	rootCmd.AddCommand(listCmd)
}
