// Package ledger maintains the append-only CSV record set of finalized
// questionnaire submissions, one file per client slug.
//
// Commits stamp every row of a submission with one shared UTC timestamp and
// append the rows after the client's existing record set. Prior rows are never
// reordered, deduplicated, or rewritten; re-sending a questionnaire produces
// duplicate rows for the resubmitted questions by design. The column set and
// order are fixed for downstream consumers.
package ledger
