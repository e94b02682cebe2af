// Package collections handles the district payment-collection report command
package collections

import (
	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/common"
	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/reports"
)

// Cmd represents the collections command
var Cmd = &cobra.Command{
	Use:   "collections",
	Short: "Produce the district payment-collection table",
	Long: `Produce the district payment-collection table: deduplicated payments
grouped by the district recorded on the payment, with amounts and headcounts.`,
	Run: collectionsFunc,
}

func collectionsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Payment collections command called")

	common.RunReport(func(engine *reports.Engine, prepared *reports.Prepared) error {
		report := engine.DistrictCollections(prepared)
		totals := engine.Overall(prepared)
		root.Log.Infof("Districts: %d, payments: %d, collected: %s, pending: %s",
			len(report.Rows), report.Payments, report.Amount.StringFixed(2), totals.TotalPending.StringFixed(2))

		if root.SharedFlags.Output == "" {
			return nil
		}
		return export.WriteCollections(report, root.SharedFlags.Output)
	})
	root.Log.Info("Payment collections completed successfully!")
}
