// Package categories handles the category summary report command
package categories

import (
	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/common"
	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/reports"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Produce the per-category payment summary",
	Long: `Produce the per-category payment summary: deduplicated payments grouped
by the participant category declared on the payment, with collected against
expected amounts.`,
	Run: categoriesFunc,
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Category summary command called")

	common.RunReport(func(engine *reports.Engine, prepared *reports.Prepared) error {
		report := engine.CategorySummary(prepared)
		root.Log.Infof("Categories: %d, payments: %d, collected: %s",
			len(report.Rows), report.Count, report.Collected.StringFixed(2))

		if root.SharedFlags.Output == "" {
			return nil
		}
		return export.WriteCategorySummary(report, root.SharedFlags.Output)
	})
	root.Log.Info("Category summary completed successfully!")
}
