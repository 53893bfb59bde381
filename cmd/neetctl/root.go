package main

import (
	"encoding/json"
	"io"

	"neet-rank-predictor/internal/config"
	"neet-rank-predictor/internal/quizdata"
	"neet-rank-predictor/internal/services"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "neetctl",
	Short:        "Inspect NEET quiz reports from the command line",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Quiz fixture directory (overrides DATA_DIR env var)")
	rootCmd.PersistentFlags().String("rank-table", "", "Rank table YAML file (overrides RANK_TABLE_PATH env var)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(responsesCmd)
	rootCmd.AddCommand(checkCmd)
}

// newClient builds the fixture client using --data-dir (highest priority),
// then DATA_DIR, then the default directory.
func newClient(cmd *cobra.Command) *quizdata.Client {
	dir, _ := cmd.Flags().GetString("data-dir")
	if dir == "" {
		dir = config.Load().DataDir
	}
	return quizdata.NewClient(dir)
}

func newReportService(cmd *cobra.Command) (*services.ReportService, error) {
	path, _ := cmd.Flags().GetString("rank-table")
	if path == "" {
		path = config.Load().RankTablePath
	}
	table, err := config.LoadRankTable(path)
	if err != nil {
		return nil, err
	}
	return services.NewReportService(newClient(cmd), table), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
