// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-mcp server and CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-mcp/internal/coreapi"
	"github.com/pdiddy/scholar-mcp/internal/logging"
	"github.com/pdiddy/scholar-mcp/internal/secrets"
	"github.com/pdiddy/scholar-mcp/internal/serpapi"
	"github.com/pdiddy/scholar-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const userAgent = "scholar-mcp/0.1"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for scholar-mcp.
var rootCmd = &cobra.Command{
	Use:   "scholar-mcp",
	Short: "Academic literature search tools behind an MCP server",
	Long: `scholar-mcp exposes Google Scholar search, author profiles, citation
graphs, and Open Access full-text retrieval as model-context-protocol
tools. The serve subcommand runs the MCP server on stdio; the remaining
subcommands invoke the same operations directly from the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-mcp.yaml or ~/.config/scholar-mcp/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-mcp"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_MCP")
	viper.AutomaticEnv()
	viper.SetDefault("timeout", types.DefaultTimeout)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the persistent flags.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	return logging.New(level, format)
}

// newScholarClient builds the citation-index client. The key is
// required: serving or querying without it is always an upstream 401,
// so it fails fast here instead.
func newScholarClient() (*serpapi.Client, error) {
	key := loadedSecrets.Get("serpapi-api-key", viper.GetString("serpapi_api_key"))
	if key == "" {
		return nil, fmt.Errorf("SerpAPI key missing: set SCHOLAR_MCP_SERPAPI_API_KEY or .secrets/serpapi-api-key")
	}
	return serpapi.New(types.ScholarConfig{
		HTTPConfig: httpConfig(),
		APIKey:     key,
	}), nil
}

// newFulltextClient builds the open-access client. Its key is optional:
// without one the client runs unauthenticated at a lower rate allowance.
func newFulltextClient() *coreapi.Client {
	key := loadedSecrets.Get("core-api-key", viper.GetString("core_api_key"))
	return coreapi.New(types.FulltextConfig{
		HTTPConfig: httpConfig(),
		APIKey:     key,
	})
}

func httpConfig() types.HTTPConfig {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return types.HTTPConfig{Timeout: timeout, UserAgent: userAgent}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
