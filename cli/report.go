package cli

import (
	"context"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"go.driftline.io/pipeline/pkg/platform/yamlstore"
	"go.driftline.io/pipeline/utils"
)

func init() {
	Register("report", Report)
}

// Report retrieves the command to render a drift report on the terminal.
func Report(_ context.Context, p *Provider) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Render a drift report as a table",
		Example: "driftline report --path artifacts/.../drift_report/report.yaml",
		RunE: func(_ *cobra.Command, _ []string) error {
			report, err := yamlstore.ReadDriftReport(reportPath)
			if err != nil {
				utils.LogError(p.Logger, err, "failed to read the drift report")
				return err
			}

			columns := make([]string, 0, len(report))
			for column := range report {
				columns = append(columns, column)
			}
			sort.Strings(columns)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Column", "P-Value", "Drift"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			drifted := 0
			for _, column := range columns {
				entry := report[column]
				verdict := color.GreenString("no")
				if entry.DriftDetected {
					verdict = color.RedString("yes")
					drifted++
				}
				table.Append([]string{
					column,
					strconv.FormatFloat(entry.PValue, 'g', 6, 64),
					verdict,
				})
			}
			table.Render()

			if drifted > 0 {
				color.Red("%d of %d compared columns drifted", drifted, len(report))
			} else {
				color.Green("no drift across %d compared columns", len(report))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reportPath, "path", "", "Path to the drift report yaml")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
