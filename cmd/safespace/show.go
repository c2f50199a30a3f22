package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"safespace/client/internal/compare"
)

var showCmd = &cobra.Command{
	Use:   "show <property-id>",
	Short: "Show one listing with its neighborhood and map pins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		propertyID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid property id %q", args[0])
		}

		property, err := client.GetProperty(ctx, propertyID)
		if err != nil {
			return err
		}
		neighborhoods, err := client.GetNeighborhoods(ctx)
		if err != nil {
			return err
		}

		detail := pipeline.DeriveDetail(property, neighborhoods)

		p := detail.Property
		fmt.Printf("%s\n%s, %s, %s %s\n", p.Title, p.Address, p.City, p.State, p.ZipCode)
		fmt.Printf("%s (%s/sqft)\n", compare.FormatPrice(p.Price), compare.FormatPricePerSqft(p.Price, p.Sqft))
		fmt.Printf("%d beds, %d baths, %d sqft, %s\n", p.Beds, p.Baths, p.Sqft, p.PropertyType)
		fmt.Printf("Safety Score: %.1f/10\n", p.SafetyScore)

		if detail.Neighborhood != nil {
			n := detail.Neighborhood
			fmt.Printf("\nNeighborhood: %s (safety level %s, HDI %.2f)\n", n.Name, n.SafetyLevel, n.HdiScore)
			fmt.Printf("Response times: police %g min, fire %g min, medical %g min\n",
				n.PoliceResponse, n.FireResponse, n.MedicalResponse)
		}

		fmt.Println("\nMap pins:")
		for _, loc := range detail.MapLocations {
			fmt.Printf("  %s (%.4f, %.4f) risk %s\n", loc.Name, loc.Position[0], loc.Position[1], loc.RiskLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
