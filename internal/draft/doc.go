// Package draft persists in-progress questionnaire answers between sessions.
//
// Each client owns one JSON draft file keyed by the client slug. Loading never
// fails: a missing, unreadable, or corrupt draft file degrades silently to an
// empty draft so the form always opens. Saving rewrites the whole draft
// through a temporary file and rename so a crash mid-write never leaves a torn
// file behind for the next load.
package draft
