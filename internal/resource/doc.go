// Package resource owns the compressed network payloads embedded in the
// binary and their decompressed text.
//
// Each payload is a raw DEFLATE stream (RFC 1951) stored as
// networks/<name>.json.flate and embedded with go:embed. [Default] is the
// process-wide table built from those files at init. Text is inflated on
// first access and cached for the life of the process; the cache entry for
// each resource is filled exactly once, so concurrent first readers all see
// the same text.
//
// A payload that fails to inflate is a packaging defect. It surfaces as an
// error with code CORRUPT_RESOURCE, and since the data is static the same
// error is returned on every later call.
package resource
