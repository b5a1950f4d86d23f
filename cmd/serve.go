package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mccabemgmt/site/pkg/api"
	"github.com/mccabemgmt/site/pkg/services"
	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/view"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	variant, err := site.Lookup(cfg.SiteVariant)
	if err != nil {
		return fmt.Errorf("error selecting site variant: %w", err)
	}

	theme, ok := view.ParseTheme(cfg.DefaultTheme)
	if !ok {
		logger.Warn().Str("theme", cfg.DefaultTheme).Msg("Unknown DEFAULT_THEME, using dark")
		theme = view.ThemeDark
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		return fmt.Errorf("unknown GIN_MODE %q", cfg.GinMode)
	}

	intentService := services.NewContactIntentService(variant, logger)
	handlers := api.NewHandlers(intentService, variant, theme, logger)
	router := api.NewRouter(handlers, cfg.CORSOrigin, logger)

	logger.Info().
		Str("port", cfg.Port).
		Str("variant", variant.Key).
		Str("domain", variant.Domain).
		Msg("Server starting")

	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
