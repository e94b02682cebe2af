// Package abstract handles the district abstract report command
package abstract

import (
	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/common"
	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/reports"
)

// Cmd represents the abstract command
var Cmd = &cobra.Command{
	Use:   "abstract",
	Short: "Produce the all-districts registrant abstract",
	Long: `Produce the all-districts registrant abstract: registrations, category
breakdown, headcounts, expected fees and attributed payments per district.`,
	Run: abstractFunc,
}

func abstractFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("District abstract command called")

	common.RunReport(func(engine *reports.Engine, prepared *reports.Prepared) error {
		report := engine.DistrictAbstract(prepared)
		root.Log.Infof("Districts: %d, registrations: %d, expected: %d, paid: %s",
			len(report.Rows), report.Registrations, report.TotalExpected, report.TotalPaid.StringFixed(2))

		if root.SharedFlags.Output == "" {
			return nil
		}
		return export.WriteAbstract(report, root.SharedFlags.Output)
	})
	root.Log.Info("District abstract completed successfully!")
}
