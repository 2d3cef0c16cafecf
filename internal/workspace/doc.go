// Package workspace coordinates the per-client questionnaire session.
//
// A ClientWorkspace owns the loaded catalog together with the draft store,
// attachment store, and ledger writer handles for one client; there is no
// process-wide mutable state. Mutating operations persist the draft
// immediately. The workspace assumes a single writer per client, enforced by
// deployment convention rather than locks.
package workspace
