// Package workers handles the worker ledger command
package workers

import (
	"context"

	"github.com/spf13/cobra"

	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/export"
	"sjtech/spicon-recon/internal/store"
	"sjtech/spicon-recon/internal/workerledger"
)

// Cmd represents the workers command
var Cmd = &cobra.Command{
	Use:   "workers",
	Short: "Produce a region's worker transaction ledger",
	Long: `Produce the worker transaction ledger for one region: disbursements and
refunds decoded from payment requests, reconciled against the region's
collections. A region is required.`,
	Run: workersFunc,
}

func workersFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Worker ledger command called")

	region := root.SharedFlags.Region
	if region == "" {
		root.Log.Fatal("The worker ledger needs a region: set --region")
	}

	table, err := store.LoadTable(root.SharedFlags.PricingFile)
	if err != nil {
		root.Log.Fatalf("Error loading pricing tariffs: %v", err)
	}

	src := root.NewSource()
	ctx := context.Background()

	requests, err := src.PaymentRequests(ctx)
	if err != nil {
		root.Log.Fatalf("Error fetching payment requests: %v", err)
	}
	registrations, err := src.Registrations(ctx)
	if err != nil {
		root.Log.Fatalf("Error fetching registrations: %v", err)
	}

	ledger := workerledger.Build(requests, registrations, table, region)
	root.Log.Infof("Transactions: %d, collected: %s, net sent: %s, balance: %s",
		len(ledger.Transactions), ledger.TotalCollected.StringFixed(2),
		ledger.NetSent().StringFixed(2), ledger.Balance().StringFixed(2))

	if root.SharedFlags.Output != "" {
		if err := export.WriteWorkerLedger(ledger, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing ledger: %v", err)
		}
	}
	root.Log.Info("Worker ledger completed successfully!")
}
