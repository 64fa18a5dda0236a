// Package normalize is the single place where lookup keys are folded.
// The hierarchy directory and the data collections are maintained by
// different people; both sides must agree on the key form or scope
// silently drops records.
package normalize

import "strings"

// Email folds an email address into its lookup form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Key folds a geography value (pc, constituency, ward, booth) into its
// stored/compared form. Applied on every write path and to caller
// filter values before matching.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
