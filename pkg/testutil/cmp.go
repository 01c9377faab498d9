package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff returns the diff of two values and an empty string if there is no
// difference. Nil and empty slices are considered equal.
func Diff(expected, actual any) string {
	return cmp.Diff(expected, actual, cmpopts.EquateEmpty())
}
