// Package source abstracts where report data comes from: the live API or
// envelope JSON files exported from it.
package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sjtech/spicon-recon/internal/models"
)

// Source provides the collections a report run needs. The API client and the
// file reader both implement it.
type Source interface {
	Registrations(ctx context.Context) ([]models.Registration, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	PaymentRequests(ctx context.Context) ([]models.PaymentRequest, error)
}

// Snapshot fetches registrations and payments concurrently and returns them
// as one immutable working set. The first error cancels the other fetch.
func Snapshot(ctx context.Context, src Source) (models.Snapshot, error) {
	var snap models.Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		regs, err := src.Registrations(ctx)
		if err != nil {
			return err
		}
		snap.Registrations = regs
		return nil
	})
	g.Go(func() error {
		pays, err := src.Payments(ctx)
		if err != nil {
			return err
		}
		snap.Payments = pays
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}
