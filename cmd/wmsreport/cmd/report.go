package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/psantana5/wmsreport/pkg/report"
	"github.com/psantana5/wmsreport/pkg/wms"
)

var (
	// Report flags
	reportUser string
	histDays   float64
	passThru   string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Summarize jobs submitted for execution",
	Long:  `Print a one-line-per-run summary of submitted runs, or, when a run id is given, a detailed per-stage breakdown of that run's job counts.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportUser, "user", "", "restrict the report to runs submitted by this user")
	reportCmd.Flags().Float64Var(&histDays, "hist", 1, "search history in days")
	reportCmd.Flags().StringVar(&passThru, "pass-thru", "", "pass this string through to the WMS backend")
}

func runReport(cmd *cobra.Command, args []string) error {
	runID := ""
	if len(args) > 0 {
		runID = args[0]
	}

	svc, err := wms.New(GetServiceName(), wms.Options{
		Endpoint: GetEndpoint(),
		APIKey:   GetAPIKey(),
	})
	if err != nil {
		return err
	}

	// When reporting on a single run, widen the history so jobs that
	// completed near the lookback boundary still show up.
	hist := histDays
	if runID != "" && hist < 2 {
		hist = 2
	}

	runs, message, err := svc.Report(cmd.Context(), runID, reportUser, hist, passThru)
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	if runID != "" {
		if len(runs) == 0 {
			fmt.Printf("No information found for id='%s'.\n", runID)
			fmt.Printf("Double check id and retry with a larger --hist value (currently: %g)\n", hist)
		}
		for i := range runs {
			if err := printSingleRunSummary(&runs[i]); err != nil {
				return err
			}
		}
	} else {
		sort.Slice(runs, func(i, j int) bool { return runs[i].WmsID < runs[j].WmsID })
		var summary report.SummaryBuilder
		for i := range runs {
			summary.Add(&runs[i])
		}
		for _, line := range report.RenderSummary(summary.Rows()) {
			fmt.Println(line)
		}
		fmt.Println()
	}

	if message != "" {
		fmt.Println(message)
	}
	return nil
}

// printSingleRunSummary prints one run's summary line, its submit path,
// and the per-label job count breakdown.
func printSingleRunSummary(run *wms.RunReport) error {
	var summary report.SummaryBuilder
	summary.Add(run)
	for _, line := range report.RenderSummary(summary.Rows()) {
		fmt.Println(line)
	}
	fmt.Println()

	fmt.Printf("Path: %s\n", run.Path)
	fmt.Println()

	breakdown, err := report.BuildBreakdown(run)
	if err != nil {
		return fmt.Errorf("failed to build breakdown for run %s: %w", run.WmsID, err)
	}
	if breakdown.MissingOrder {
		fmt.Println("Warning: Cannot determine order of pipeline. Instead printing alphabetical.")
	}
	for _, line := range report.RenderBreakdown(breakdown) {
		fmt.Println(line)
	}
	fmt.Println()
	return nil
}
