// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI: search PubMed,
// flag authors with company affiliations, and write the result as CSV, XLSX,
// or console lines.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/archive"
	"github.com/pdiddy/get-papers-list/internal/config"
	"github.com/pdiddy/get-papers-list/internal/logging"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/internal/report"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	appConfig types.Config
	logger    = zerolog.Nop()
)

// rootCmd searches PubMed and reports company-affiliated authors.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list [flags] <query>",
	Short: "List PubMed papers with company-affiliated authors",
	Long: `get-papers-list searches PubMed for a query, fetches the metadata of the
top 10 matches one at a time, and reports the authors whose affiliation names
a company (Inc, Ltd, Biotech, Pharma, Laboratories) and no academic
institution (University, College, Institute, Hospital).

With --file the report is written as CSV, or as an Excel workbook when the
file name ends in .xlsx. Without it each paper is printed on its own line.
Any failed request aborts the run before anything is written.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg.Log = logging.WithDebug(cfg.Log, debug)
		logger = logging.New(cfg.Log, cmd.ErrOrStderr())

		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("file", used).Msg("using config file")
		}

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			logger.Debug().Strs("keys", s.Keys()).Msg("loaded secrets")
		}
		s.Apply(&cfg.PubMed)
		if err := config.Validate(cfg); err != nil {
			return err
		}

		appConfig = cfg
		return nil
	},
	RunE: runReport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")
	rootCmd.PersistentFlags().String("archive", "", "SQLite file recording completed runs (disabled when empty)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "print debug information during execution")
	rootCmd.Flags().StringP("file", "f", "", "filename to save the results (.csv, or .xlsx for a workbook)")

	viper.BindPFlag("archive.path", rootCmd.PersistentFlags().Lookup("archive"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			logger = logging.New(types.LogConfig{Level: "warn"}, os.Stderr)
			logger.Warn().Err(err).Msg("could not read config file")
		}
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")

	client := pubmed.NewClient(appConfig.PubMed, logger)
	opts := report.Options{
		Query: args[0],
		Debug: debug,
		Diag:  cmd.ErrOrStderr(),
	}

	rep, err := report.Run(cmd.Context(), opts, client, client, logger)
	if err != nil {
		return err
	}
	if err := report.Emit(rep, file, cmd.OutOrStdout()); err != nil {
		return err
	}

	if !appConfig.Archive.Enabled() {
		return nil
	}
	store, err := archive.Open(appConfig.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(cmd.Context(), rep)
	if err != nil {
		return err
	}
	logger.Info().Str("run", id).Int("records", len(rep.Records)).Msg("archived run")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
