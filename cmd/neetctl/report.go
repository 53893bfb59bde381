package main

import (
	"context"
	"fmt"

	"neet-rank-predictor/internal/services"

	"github.com/spf13/cobra"
)

// reportCmd builds a command that prints one report for a user as JSON.
func reportCmd(use, short string, build func(context.Context, *services.ReportService, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := newReportService(cmd)
			if err != nil {
				return fmt.Errorf("load rank table: %w", err)
			}
			v, err := build(cmd.Context(), reports, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}

var analyzeCmd = reportCmd("analyze", "Print the performance analysis for a user",
	func(ctx context.Context, s *services.ReportService, userID string) (any, error) {
		return s.Analysis(ctx, userID)
	})

var insightsCmd = reportCmd("insights", "Print the insight report for a user",
	func(ctx context.Context, s *services.ReportService, userID string) (any, error) {
		return s.Insights(ctx, userID)
	})

var predictCmd = reportCmd("predict", "Print the rank prediction for a user",
	func(ctx context.Context, s *services.ReportService, userID string) (any, error) {
		return s.Prediction(ctx, userID)
	})

var responsesCmd = reportCmd("responses", "Score the current submission of a user",
	func(ctx context.Context, s *services.ReportService, userID string) (any, error) {
		return s.CurrentResponses(ctx, userID)
	})
