package base

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Cn merges tailwind classes, later classes win on conflicts.
func Cn(classes ...string) string {
	return twmerge.Merge(classes...)
}
