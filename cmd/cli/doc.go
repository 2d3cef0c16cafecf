// Package cli assembles the qledger root command, wiring configuration
// loading, structured logging, and the questionnaire subcommands.
package cli
