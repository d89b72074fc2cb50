package hbswitch

import (
	"github.com/itsatony/go-hbswitch/internal"
)

// Comparator tests a case label against the switch value.
// It returns true when the label should be treated as a match.
type Comparator func(value, label interface{}) bool

// DefaultComparator is the equality test used unless WithComparator
// overrides it. Numeric values compare numerically across Go numeric kinds,
// because the host engine parses template number literals to int while
// JSON-decoded context data arrives as float64. String-kinded values,
// including raymond.SafeString, compare by content. Everything else falls
// back to deep equality.
func DefaultComparator(value, label interface{}) bool {
	return internal.Equal(value, label)
}
