// Package cmd implements the shopsite-adapter CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/shopsite-adapter/internal/api/client"
	"github.com/donaldgifford/shopsite-adapter/internal/config"
	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
	"github.com/donaldgifford/shopsite-adapter/pkg/logger"
)

var (
	cfgFile string
	envFile string
	rootCmd = &cobra.Command{
		Use:   "shopsite-adapter",
		Short: "Signed client and HTTP adapter for the ShopSite back-office API",
		Long: "shopsite-adapter talks to a ShopSite store's XML back-office API.\n" +
			"It signs every data request, normalizes XML responses into\n" +
			"lists, and exposes orders, products, and inventory over HTTP\n" +
			"or straight from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
	rootCmd.PersistentFlags().
		String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("server", "", "URL of a running adapter to query instead of the store (env SHOPSITE_SERVER)")

	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(inventoryCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(openapiCmd())
	rootCmd.AddCommand(versionCmd())
}

// initConfig loads the dotenv file, so that SHOPSITE_* variables it defines
// are visible to config.Load, and enables SHOPSITE_LOG_LEVEL and friends.
// Variables already set in the environment win over the file.
func initConfig() {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Ignoring env file:", err)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setup loads the configuration and builds the logger. Log flags, when
// given, override the config file.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if viper.IsSet("log-level") {
		cfg.Logging.Level = viper.GetString("log-level")
	}
	if viper.IsSet("log-format") {
		cfg.Logging.Format = viper.GetString("log-format")
	}

	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

// service returns the Service the store commands run against: an API client
// for --server when set, otherwise a signed client built from the config.
func service() (shopsite.Service, error) {
	if server := viper.GetString("server"); server != "" {
		return newAPIClient(server), nil
	}

	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}
	return newShopSiteClient(cfg, log), nil
}

// newAPIClient builds a client for a running adapter. No store credentials
// are needed, so only the log flags are honored.
func newAPIClient(server string) *client.Client {
	log := logger.New(viper.GetString("log-level"), viper.GetString("log-format"))
	return client.New(server, client.WithLogger(log))
}

func newShopSiteClient(cfg *config.Config, log *slog.Logger) *shopsite.Client {
	opts := []shopsite.Option{
		shopsite.WithHTTPClient(&http.Client{Timeout: cfg.ShopSite.Timeout}),
		shopsite.WithLogger(log),
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, shopsite.WithRateLimiter(shopsite.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
		)))
	}

	return shopsite.NewClient(shopsite.Credentials{
		BaseURL:      cfg.ShopSite.BaseURL,
		ClientID:     cfg.ShopSite.ClientID,
		ClientSecret: cfg.ShopSite.ClientSecret,
		AuthCode:     cfg.ShopSite.AuthCode,
		Username:     cfg.ShopSite.Username,
		Password:     cfg.ShopSite.Password,
	}, opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
