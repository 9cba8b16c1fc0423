// Package batch estimates many profiles at once.
//
// Items are split into fixed-size batches which are processed sequentially
// or with bounded concurrency. Estimate is the profile-level entry point used
// by the batch command: it keeps input order, records per-line failures and
// optionally stops at the first one.
package batch
