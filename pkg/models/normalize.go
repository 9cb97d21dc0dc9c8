package models

import "strings"

// CleanDate guards optional date fields off the wire. Empty or whitespace-only
// input normalizes to the empty string; anything else passes through trimmed.
// Dates are calendar dates in YYYY-MM-DD text form and are never parsed here.
func CleanDate(s string) string {
	return strings.TrimSpace(s)
}

// firstNonEmpty resolves a denormalized convenience field: the flattened value
// the upstream sometimes sends wins, then the value read out of the nested
// related object, otherwise the field stays empty.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// fullName joins name and surname for display, tolerating either being empty.
func fullName(name, surname string) string {
	return strings.TrimSpace(strings.TrimSpace(name) + " " + strings.TrimSpace(surname))
}
