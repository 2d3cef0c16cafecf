package form

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/qledger/internal/attachment"
)

const (
	attachCommandNameConstant     = "attach [files...]"
	attachCommandShortDescription = "Attach supporting files to one question"
	attachCommandLongDescription  = "attach stores the provided files under the client's upload directory with deterministic names and records their relative paths in the draft. Files that fail to store are reported without blocking the rest of the batch."
)

// AttachCommandBuilder assembles the attach cobra command.
type AttachCommandBuilder struct {
	Dependencies
}

// Build constructs the cobra command storing attachment files.
func (builder *AttachCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   attachCommandNameConstant,
		Short: attachCommandShortDescription,
		Long:  attachCommandLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flagCatalogName, "", flagCatalogDescription)
	command.Flags().String(flagQuestionName, "", flagQuestionDescription)

	return command, nil
}

func (builder *AttachCommandBuilder) run(command *cobra.Command, arguments []string) error {
	questionReference, _ := command.Flags().GetString(flagQuestionName)
	if len(strings.TrimSpace(questionReference)) == 0 {
		return errors.New(errorQuestionFlagMissingConstant)
	}
	if len(arguments) == 0 {
		return errors.New(errorNoFilesProvidedConstant)
	}

	clientWorkspace, workspaceError := builder.resolveWorkspace(command)
	if workspaceError != nil {
		return workspaceError
	}

	question, findError := clientWorkspace.FindQuestion(questionReference)
	if findError != nil {
		return findError
	}

	uploads := make([]attachment.Upload, 0, len(arguments))
	readErrors := make([]error, 0, len(arguments))
	for _, filePath := range arguments {
		content, readError := os.ReadFile(filePath)
		if readError != nil {
			readErrors = append(readErrors, readError)
			continue
		}
		uploads = append(uploads, attachment.Upload{DeclaredName: filepath.Base(filePath), Content: content})
	}

	storedPaths, saveError := clientWorkspace.AttachFiles(question, uploads)
	for _, storedPath := range storedPaths {
		fmt.Fprintf(command.OutOrStdout(), attachmentStoredTemplateConstant, storedPath)
	}

	readErrors = append(readErrors, saveError)
	return errors.Join(readErrors...)
}
