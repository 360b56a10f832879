package main

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Weekly report maintenance",
}

var reportGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store the weekly report",
	Long:  `Generate the weekly report for the ISO week containing --date (today when omitted) and upsert it.`,
	RunE:  runReportGenerate,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the most recent weekly reports as JSON",
	RunE:  runReportList,
}

var (
	reportDate  string
	reportLimit int
)

func init() {
	reportGenerateCmd.Flags().StringVar(&reportDate, "date", "", "Any day of the target week (YYYY-MM-DD)")
	reportListCmd.Flags().IntVar(&reportLimit, "limit", 10, "Number of reports to print (max 52)")

	reportCmd.AddCommand(reportGenerateCmd)
	reportCmd.AddCommand(reportListCmd)
}

func runReportGenerate(cmd *cobra.Command, args []string) error {
	var target *time.Time
	if reportDate != "" {
		t, err := calendar.ParseDate(reportDate)
		if err != nil {
			return err
		}
		target = &t
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	ctx := logger.WithLogger(cmd.Context(), a.log)
	report, err := a.reports.GenerateWeeklyReport(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to generate weekly report: %w", err)
	}

	return printJSON(cmd, report)
}

func runReportList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	ctx := logger.WithLogger(cmd.Context(), a.log)
	reports, err := a.reports.ListWeeklyReports(ctx, reportLimit)
	if err != nil {
		return fmt.Errorf("failed to list weekly reports: %w", err)
	}

	return printJSON(cmd, reports)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
