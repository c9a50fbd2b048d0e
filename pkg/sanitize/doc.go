// Package sanitize validates and normalises the free-text registration fields
// into slug-safe values.
//
// Validate is advisory: it flags a field that contains characters outside the
// Latin letter, digit, whitespace and hyphen classes so callers can gate
// submission. Sanitize is total and never fails; it is applied to the raw
// value at submit time and produces a value matching [a-z0-9-]*.
package sanitize
