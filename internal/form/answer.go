package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	answerCommandNameConstant     = "answer"
	answerCommandShortDescription = "Record the response text for one question"
	answerCommandLongDescription  = "answer merges the provided response text into the client's draft and persists the draft immediately. Previously attached files are preserved."
)

// AnswerCommandBuilder assembles the answer cobra command.
type AnswerCommandBuilder struct {
	Dependencies
}

// Build constructs the cobra command recording a response text.
func (builder *AnswerCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   answerCommandNameConstant,
		Short: answerCommandShortDescription,
		Long:  answerCommandLongDescription,
		RunE:  builder.run,
	}

	command.Flags().String(flagCatalogName, "", flagCatalogDescription)
	command.Flags().String(flagQuestionName, "", flagQuestionDescription)
	command.Flags().String(flagTextName, "", flagTextDescription)

	return command, nil
}

func (builder *AnswerCommandBuilder) run(command *cobra.Command, arguments []string) error {
	questionReference, _ := command.Flags().GetString(flagQuestionName)
	if len(strings.TrimSpace(questionReference)) == 0 {
		return errors.New(errorQuestionFlagMissingConstant)
	}

	clientWorkspace, workspaceError := builder.resolveWorkspace(command)
	if workspaceError != nil {
		return workspaceError
	}

	question, findError := clientWorkspace.FindQuestion(questionReference)
	if findError != nil {
		return findError
	}

	responseText, _ := command.Flags().GetString(flagTextName)
	if saveError := clientWorkspace.SetAnswerText(question, responseText); saveError != nil {
		return saveError
	}

	fmt.Fprintf(command.OutOrStdout(), answerSavedTemplateConstant, question.Key())
	return nil
}
