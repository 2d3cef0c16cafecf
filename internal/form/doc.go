// Package form implements the interactive questionnaire commands of the
// qledger CLI: listing catalog questions, recording answers, attaching
// justification files, and committing finalized responses to the ledger.
//
// It exposes one CommandBuilder per cobra command plus the shared
// configuration resolved from the application configuration file.
package form
