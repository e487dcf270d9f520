// Package report aggregates scanned entries into a size-ranked snapshot and
// renders byte counts and shares of the total for display and export.
package report
