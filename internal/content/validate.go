package content

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by Validate when two records in the same table
// share an ID. Fragments are keyed by ID, so duplicates leave the identity
// of the rendered fragments ambiguous.
var ErrDuplicateID = errors.New("duplicate id")

// Keyed is anything with a stable integer identity.
type Keyed interface {
	Key() int
}

// Validate checks that every record in table has a distinct Key. The
// renderer never calls it; it exists for tooling and tests.
func Validate[R Keyed](table string, records []R) error {
	seen := make(map[int]int, len(records))
	var errs []error
	for pos, rec := range records {
		if first, ok := seen[rec.Key()]; ok {
			errs = append(errs, fmt.Errorf("%s: %w %d at positions %d and %d", table, ErrDuplicateID, rec.Key(), first, pos))
			continue
		}
		seen[rec.Key()] = pos
	}
	return errors.Join(errs...)
}

// ValidateAll runs Validate over every shipped table.
func ValidateAll() error {
	return errors.Join(
		Validate("services", Services()),
		Validate("gallery", Gallery()),
		Validate("testimonials", Testimonials()),
	)
}
