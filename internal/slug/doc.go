// Package slug normalizes free-form client identifiers into filesystem- and
// CSV-safe slugs used to derive every per-client storage path.
package slug
