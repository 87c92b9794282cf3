// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers-list/internal/archive"
	"github.com/pdiddy/get-papers-list/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and re-export archived runs",
	Long: `History reads the SQLite archive written by runs made with --archive
(or archive.path in the config file). Use "history list" to see past runs and
"history show <run-id>" to print one as YAML or re-export it with --file.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print an archived run as YAML, or re-export it with --file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")
	historyShowCmd.Flags().StringP("file", "f", "", "write the run's records to this file (.csv or .xlsx) instead of printing YAML")

	historyCmd.AddCommand(historyListCmd, historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openArchive() (*archive.Store, error) {
	if !appConfig.Archive.Enabled() {
		return nil, fmt.Errorf("no archive configured: pass --archive or set archive.path")
	}
	return archive.Open(appConfig.Archive)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-7s  %s\n", "Run", "Created", "Records", "Query")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %-7d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.RecordCount, r.Query)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	store, err := openArchive()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if file != "" {
		return report.Emit(run.Report(), file, cmd.OutOrStdout())
	}
	return archive.WriteYAML(cmd.OutOrStdout(), run)
}
