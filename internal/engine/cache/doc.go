// Package cache stores suggestion lists on disk with TTL expiry.
//
// Entries live as one JSON file per key under the cache directory
// (default ~/.carbonfoot/cache). Keys are SHA256 digests of the request
// that produced the value, so identical profiles reuse an earlier answer
// from the suggestion provider until the entry expires.
package cache
