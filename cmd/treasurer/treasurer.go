// Package treasurer handles the treasurer day book command
package treasurer

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/source"
)

var (
	fromFlag string
	toFlag   string
)

// Cmd represents the treasurer command
var Cmd = &cobra.Command{
	Use:   "treasurer",
	Short: "Produce the treasurer day book",
	Long: `Produce the treasurer day book: one line per registrant and gift with
the expected fee, the amount paid and the open balance, optionally restricted
to a payment-date window.`,
	Run: treasurerFunc,
}

func init() {
	Cmd.Flags().StringVar(&fromFlag, "from", "", "Start of the payment-date window (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&toFlag, "to", "", "End of the payment-date window (YYYY-MM-DD), inclusive")
}

func treasurerFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Treasurer summary command called")

	from := parseDateFlag("from", fromFlag)
	to := parseDateFlag("to", toFlag)

	engine := root.NewEngine()
	src := root.NewSource()

	snap, err := source.Snapshot(context.Background(), src)
	if err != nil {
		root.Log.Fatalf("Error fetching snapshot: %v", err)
	}

	report := engine.TreasurerSummary(snap, root.SharedFlags.Region, from, to)
	root.Log.Infof("Rows: %d, total: %s, paid: %s, balance: %s",
		len(report.Rows), report.TotalAmount.StringFixed(2),
		report.AmountPaid.StringFixed(2), report.Balance.StringFixed(2))

	if root.SharedFlags.Output != "" {
		if err := export.WriteTreasurer(report, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing report: %v", err)
		}
	}
	root.Log.Info("Treasurer summary completed successfully!")
}

func parseDateFlag(name, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	when, err := time.Parse("2006-01-02", value)
	if err != nil {
		root.Log.Fatalf("Invalid --%s date %q, expected YYYY-MM-DD", name, value)
	}
	return when
}
