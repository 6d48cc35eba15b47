// Package fragment projects content records into the per-record view data a
// section template ranges over.
package fragment

// Record is a content record with a stable identity.
type Record interface {
	Key() int
}

// Fragment is the view of one record, keyed by the record's identity.
type Fragment[V any] struct {
	Key  int
	View V
}

// Project returns one Fragment per record, in the order of records, each
// keyed by its record's Key. Records are passed to view untouched. Duplicate
// keys are not detected; which of them a client treats as current is up to
// the client.
func Project[R Record, V any](records []R, view func(R) V) []Fragment[V] {
	out := make([]Fragment[V], 0, len(records))
	for _, rec := range records {
		out = append(out, Fragment[V]{
			Key:  rec.Key(),
			View: view(rec),
		})
	}
	return out
}
