package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"safespace/client/config"
	"safespace/client/internal/api"
	"safespace/client/internal/listings"
	"safespace/client/internal/risk"
	"safespace/client/internal/stubapi"
)

var (
	cfg      *config.Config
	logger   *logrus.Logger
	client   *api.Client
	pipeline listings.Pipeline

	demoMode   bool
	apiURLFlag string
	demoServer *http.Server
)

var rootCmd = &cobra.Command{
	Use:   "safespace",
	Short: "Browse SafeSpace property listings from the terminal",
	Long: "Fetches listings and neighborhood safety data from the SafeSpace API and " +
		"derives filtered, sorted and risk-classified views of them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stderr)

		baseURL := cfg.API.BaseURL
		if apiURLFlag != "" {
			baseURL = apiURLFlag
		}
		if demoMode {
			baseURL, err = startDemo()
			if err != nil {
				return fmt.Errorf("start demo backend: %w", err)
			}
			logger.WithField("url", baseURL).Info("Running against in-process demo data")
		}

		client = api.NewClient(baseURL, cfg.API.Timeout, logger)
		pipeline = listings.NewPipeline(risk.Thresholds{
			Low:  cfg.Risk.LowThreshold,
			High: cfg.Risk.HighThreshold,
		}).WithNeighborhoodRadius(cfg.NeighborhoodMaxDistance)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if demoServer != nil {
			_ = demoServer.Close()
		}
	},
}

// startDemo serves the seeded stub API on an ephemeral local port and
// returns its base URL.
func startDemo() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}

	demoServer = &http.Server{Handler: stubapi.NewServer(logger).Engine()}
	go func() {
		if err := demoServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Demo backend stopped")
		}
	}()

	return "http://" + ln.Addr().String(), nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "run against built-in sample data instead of the live API")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "override the SafeSpace API base URL")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
