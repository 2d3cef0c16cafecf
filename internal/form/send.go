package form

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	sendCommandNameConstant     = "send"
	sendCommandShortDescription = "Append the draft responses to the client ledger"
	sendCommandLongDescription  = "send writes one ledger row per catalog question with the draft answers and attachment paths, stamping every row of the batch with the same UTC timestamp. The ledger is append-only; sending twice records the batch twice."
)

// SendCommandBuilder assembles the send cobra command.
type SendCommandBuilder struct {
	Dependencies
}

// Build constructs the cobra command committing draft responses.
func (builder *SendCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   sendCommandNameConstant,
		Short: sendCommandShortDescription,
		Long:  sendCommandLongDescription,
		RunE:  builder.run,
	}

	command.Flags().String(flagCatalogName, "", flagCatalogDescription)
	command.Flags().Bool(flagKeepDraftName, false, flagKeepDraftDescription)

	return command, nil
}

func (builder *SendCommandBuilder) run(command *cobra.Command, arguments []string) error {
	clientWorkspace, workspaceError := builder.resolveWorkspace(command)
	if workspaceError != nil {
		return workspaceError
	}

	keepDraft, _ := command.Flags().GetBool(flagKeepDraftName)
	ledgerPath, commitError := clientWorkspace.Commit(!keepDraft)
	if commitError != nil {
		return commitError
	}

	fmt.Fprintf(command.OutOrStdout(), submissionResultTemplateConstant, ledgerPath)
	return nil
}
