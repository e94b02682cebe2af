// Package attendance handles the attendance report command
package attendance

import (
	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/common"
	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/reports"
)

// Cmd represents the attendance command
var Cmd = &cobra.Command{
	Use:   "attendance",
	Short: "Produce the region and district attendance roll-up",
	Long: `Produce the attendance roll-up: registrants counted as attending once
their attributed payments cover the expected fee, broken down by region,
district and gender.`,
	Run: attendanceFunc,
}

func attendanceFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Attendance report command called")

	common.RunReport(func(engine *reports.Engine, prepared *reports.Prepared) error {
		report := engine.Attendance(prepared)
		root.Log.Infof("Registered: %d, attending: %d, rate: %s%%",
			report.Registered, report.Attending, report.Rate().StringFixed(1))

		if root.SharedFlags.Output == "" {
			return nil
		}
		return export.WriteAttendance(report, root.SharedFlags.Output)
	})
	root.Log.Info("Attendance report completed successfully!")
}
