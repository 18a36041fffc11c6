// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-screen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-screen/internal/eutils"
	"github.com/pdiddy/pubmed-screen/internal/httputil"
	"github.com/pdiddy/pubmed-screen/internal/pipeline"
	"github.com/pdiddy/pubmed-screen/internal/secrets"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd runs the screening pipeline for one query.
var rootCmd = &cobra.Command{
	Use:   "pubmed-screen [query]",
	Short: "Find PubMed papers with industry-affiliated authors",
	Long: `pubmed-screen queries PubMed for articles matching a free-text query,
fetches their bibliographic records, flags authors whose affiliations
match company keywords (pharma, biotech), and writes the results to a
CSV, JSON, or YAML file.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pipelineConfig(cmd, args[0])
		if err != nil {
			return err
		}
		client := &eutils.Client{Client: httputil.NewClient(cfg.Search.HTTPConfig)}
		return pipeline.Run(cmd.Context(), client, cfg, os.Stdout)
	},
}

// pipelineConfig assembles the run configuration from flags, the viper
// config file, and loaded secrets. Flags win over config file values.
func pipelineConfig(cmd *cobra.Command, query string) (types.PipelineConfig, error) {
	file, _ := cmd.Flags().GetString("file")
	number, _ := cmd.Flags().GetInt("number")
	format, _ := cmd.Flags().GetString("format")

	switch types.OutputFormat(format) {
	case types.FormatCSV, types.FormatJSON, types.FormatYAML:
	default:
		return types.PipelineConfig{}, fmt.Errorf("unsupported format %q: use csv, json, or yaml", format)
	}

	timeout := viper.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := viper.GetString("http.user_agent")
	if userAgent == "" {
		userAgent = "pubmed-screen/" + version
	}

	apiKey := viper.GetString("ncbi.api_key")
	if apiKey == "" {
		apiKey = loadedSecrets["ncbi-api-key"]
	}
	email := viper.GetString("ncbi.email")
	if email == "" {
		email = loadedSecrets["eutils-email"]
	}

	return types.PipelineConfig{
		Query: query,
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: userAgent,
			},
			MaxResults: number,
			APIKey:     apiKey,
			Tool:       "pubmed-screen",
			Email:      email,
		},
		Extract: types.ExtractConfig{
			CompanyKeywords: viper.GetStringSlice("extract.company_keywords"),
		},
		Output: types.OutputConfig{
			File:   file,
			Format: types.OutputFormat(strings.ToLower(format)),
		},
	}, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-screen.yaml or ~/.config/pubmed-screen/config.yaml)")
	rootCmd.Flags().StringP("file", "f", "results.csv", "output filename")
	rootCmd.Flags().IntP("number", "n", 10, "number of results to fetch")
	rootCmd.Flags().String("format", "csv", "output format: csv, json, or yaml")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-screen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-screen"))
		}
	}

	viper.SetEnvPrefix("PUBMED_SCREEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
