// Package cmd provides the command-line interface for the agency site.
//
// Configuration comes from the environment (optionally seeded from a .env
// file): PORT, GIN_MODE, SITE_VARIANT, DEFAULT_THEME, CORS_ORIGIN, LOG_LEVEL
// and LOG_FORMAT.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mccabemgmt/site/pkg/config"
	"github.com/mccabemgmt/site/pkg/logging"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "mccabe",
	Short: "McCabe Management booking agency site",
	Long: `Serves the McCabe Management site and builds the mail links behind its
artist and venue contact forms.

  mccabe serve                      Start the web server
  mccabe intent artist --name ...   Print an artist submission mail link
  mccabe intent venue --venue ...   Print a venue enquiry mail link
  mccabe variants                   List site variants and their inboxes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// loadConfig reads the dotenv file, if any, then the environment
func loadConfig() (*config.Config, zerolog.Logger, error) {
	envErr := godotenv.Load(envFile)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		logger.Debug().Str("file", envFile).Msg("No dotenv file loaded")
	}

	return cfg, logger, nil
}
