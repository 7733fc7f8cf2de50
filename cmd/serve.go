package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/config"
	"github.com/Rhysnute92/fitlog/internal/nutrition"
	"github.com/Rhysnute92/fitlog/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP proxy for meal photo analysis and barcode lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if cfg.Vision.APIKey == "" {
			logrus.Warn("GEMINI_API_KEY not set, meal photo analysis will fail")
		}

		vision := nutrition.NewVisionClient(cfg.Vision.APIKey, cfg.Vision.Model)
		foods := nutrition.NewClient(cfg.Nutrition.BaseURL)

		srv := server.New(vision, foods)
		logrus.WithField("addr", serveAddr).Info("starting server")
		return srv.ListenAndServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":3000", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
