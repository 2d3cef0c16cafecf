// Package attachment names and persists uploaded justification files.
//
// File names deterministically encode the client slug, the question numero,
// and a per-question sequence number that continues from the count of files
// already stored for that client and question. Because the sequence is
// strictly increasing and part of the name, no upload ever overwrites an
// earlier one.
package attachment
