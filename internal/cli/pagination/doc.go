// Package pagination provides limit/offset and page-based windowing plus
// field sorting for CLI commands that emit many results.
//
// The batch command uses it to sort estimated profiles (for example by
// total, descending) and to print one window of them.
package pagination
