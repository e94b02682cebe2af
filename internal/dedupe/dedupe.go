// Package dedupe collapses records that refer to the same underlying
// transaction. Payments are deduplicated in every report; the treasurer and
// worker workflows apply the same pass to registrations.
package dedupe

// Keyed is implemented by records carrying an optional transaction reference.
type Keyed interface {
	TransactionRef() string
}

// ByTransaction reduces items to one entry per non-empty transaction
// reference. The first occurrence wins unconditionally; no fields are merged
// from later duplicates. Records without a reference are always kept, and the
// relative order of kept records is preserved, which makes the pass
// idempotent.
func ByTransaction[T Keyed](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	kept := make([]T, 0, len(items))
	for _, item := range items {
		ref := item.TransactionRef()
		if ref == "" {
			kept = append(kept, item)
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		kept = append(kept, item)
	}
	return kept
}
