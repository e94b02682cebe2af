// Package common contains shared functionality for command handlers
package common

import (
	"context"

	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/internal/reports"
	"sjtech/spicon-recon/internal/source"
)

// RunReport fetches the snapshot, prepares it for the configured region and
// hands the working set to the report-specific build step. Fetch or export
// errors are fatal, matching the CLI's fail-fast behavior.
func RunReport(build func(engine *reports.Engine, prepared *reports.Prepared) error) {
	engine := root.NewEngine()
	src := root.NewSource()

	snap, err := source.Snapshot(context.Background(), src)
	if err != nil {
		root.Log.Fatalf("Error fetching snapshot: %v", err)
	}

	prepared := engine.Prepare(snap, root.SharedFlags.Region)
	if err := build(engine, prepared); err != nil {
		root.Log.Fatalf("Error building report: %v", err)
	}
}
