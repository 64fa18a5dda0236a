package handlers

import (
	"sort"
	"strconv"
)

// sortedNames drops blanks and sorts lexicographically for the
// presentation boundary; resolvers and repositories never sort.
func sortedNames(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// sortedWards sorts numerically when both values are numbers ("2"
// before "10"), falling back to string order for named wards.
func sortedWards(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, aErr := strconv.Atoi(out[i])
		b, bErr := strconv.Atoi(out[j])
		if aErr == nil && bErr == nil {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}
