package utils

import "strings"

// AllowList is the immutable set of full names authorized for chat access.
// Matching is exact: names are compared case- and whitespace-sensitively
// against the set as configured; only the candidate's surrounding whitespace
// is trimmed before lookup.
type AllowList struct {
	names map[string]struct{}
}

// NewAllowList builds an AllowList from the configured names.
func NewAllowList(names []string) *AllowList {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &AllowList{names: set}
}

// Allowed reports whether the trimmed full name is in the set.
func (a *AllowList) Allowed(fullName string) bool {
	_, ok := a.names[strings.TrimSpace(fullName)]
	return ok
}
