// Package reports folds classified, deduplicated and matched records into the
// back-office summary tables: district abstract, payment collections,
// category summary, place-wise summary, attendance and treasurer roll-ups.
//
// Every report run works on one immutable snapshot and rebuilds the full
// classify → dedupe → match → aggregate pipeline; nothing is cached between
// runs and the source collections are never mutated.
package reports

import (
	"strings"

	"github.com/sirupsen/logrus"

	"sjtech/spicon-recon/internal/classifier"
	"sjtech/spicon-recon/internal/dedupe"
	"sjtech/spicon-recon/internal/models"
	"sjtech/spicon-recon/internal/pricing"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// UnknownBucket is the bucket key for records missing their grouping field.
const UnknownBucket = "Unknown"

// Engine computes report tables from snapshots using one pricing table.
type Engine struct {
	Pricing pricing.Table
}

// NewEngine creates an engine priced by table.
func NewEngine(table pricing.Table) *Engine {
	return &Engine{Pricing: table}
}

// Prepared is one report run's working set: gifts split out, payments
// deduplicated, both sides restricted to the requested region. It is rebuilt
// for every run and discarded once the run's tables are produced.
type Prepared struct {
	Region        string
	Registrations []models.Registration
	Gifts         []models.Registration
	Payments      []models.Payment
}

// Prepare runs the classify, dedupe and filter steps shared by every report.
// An empty region means no filter; otherwise records must match the region
// exactly after trimming. Payments are deduplicated before the region filter
// so a duplicate never resurfaces under a different region.
func (e *Engine) Prepare(snap models.Snapshot, region string) *Prepared {
	registrations := filterByRegion(snap.Registrations, region, func(r models.Registration) string {
		return r.Region
	})
	registrants, gifts := classifier.Partition(registrations)

	payments := filterByRegion(dedupe.ByTransaction(snap.Payments), region, func(p models.Payment) string {
		return p.Region
	})

	log.WithFields(logrus.Fields{
		"region":        region,
		"registrations": len(registrants),
		"gifts":         len(gifts),
		"payments":      len(payments),
	}).Debug("Prepared report snapshot")

	return &Prepared{
		Region:        region,
		Registrations: registrants,
		Gifts:         gifts,
		Payments:      payments,
	}
}

// expected prices one registration with the engine's table.
func (e *Engine) expected(reg models.Registration) int64 {
	return e.Pricing.Amount(reg.Region, reg.GroupType, reg.MaritalStatus, reg.SpouseAttending)
}

func filterByRegion[T any](items []T, region string, regionOf func(T) string) []T {
	if region == "" {
		return items
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(regionOf(item)) == region {
			kept = append(kept, item)
		}
	}
	return kept
}

// orDefault substitutes the Unknown bucket for an empty grouping key.
func orDefault(key string) string {
	if key == "" {
		return UnknownBucket
	}
	return key
}
