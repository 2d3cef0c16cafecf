package form

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/qledger/internal/catalog"
)

const (
	questionsCommandNameConstant     = "questions"
	questionsCommandShortDescription = "List the catalog questions with their draft answers"
	questionsCommandLongDescription  = "questions prints the catalog grouped by groupe and sous-compte, showing each question's prompt, amount, and the draft answer recorded so far."
)

// QuestionsCommandBuilder assembles the questions cobra command.
type QuestionsCommandBuilder struct {
	Dependencies
}

// Build constructs the cobra command listing catalog questions.
func (builder *QuestionsCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   questionsCommandNameConstant,
		Short: questionsCommandShortDescription,
		Long:  questionsCommandLongDescription,
		RunE:  builder.run,
	}

	command.Flags().String(flagCatalogName, "", flagCatalogDescription)
	command.Flags().StringSlice(flagGroupeName, nil, flagGroupeDescription)
	command.Flags().StringSlice(flagSousCompteName, nil, flagSousCompteDescription)
	command.Flags().String(flagSearchName, "", flagSearchDescription)

	return command, nil
}

func (builder *QuestionsCommandBuilder) run(command *cobra.Command, arguments []string) error {
	clientWorkspace, workspaceError := builder.resolveWorkspace(command)
	if workspaceError != nil {
		return workspaceError
	}

	displayFilter := catalog.DisplayFilter{
		Groupes:     stringSliceFlagValues(command.Flags(), flagGroupeName),
		SousComptes: stringSliceFlagValues(command.Flags(), flagSousCompteName),
	}
	displayFilter.Search, _ = command.Flags().GetString(flagSearchName)

	matchingQuestions := displayFilter.Filtered(clientWorkspace.Questions())

	outputWriter := command.OutOrStdout()
	fmt.Fprintf(outputWriter, clientSummaryTemplateConstant, clientWorkspace.ClientID(), len(matchingQuestions))

	currentGroupe := ""
	currentSousCompte := ""
	headingPrinted := false
	for _, question := range matchingQuestions {
		if !headingPrinted || question.Groupe != currentGroupe || question.SousCompte != currentSousCompte {
			fmt.Fprintf(outputWriter, groupHeadingTemplateConstant, headingLabel(question.Groupe, groupHeadingFallbackConstant), headingLabel(question.SousCompte, sousCompteFallbackConstant))
			currentGroupe = question.Groupe
			currentSousCompte = question.SousCompte
			headingPrinted = true
		}

		fmt.Fprint(outputWriter, questionHeaderLine(question))
		if len(question.Prompt) > 0 {
			fmt.Fprintf(outputWriter, questionPromptTemplateConstant, question.Prompt)
		}

		answer := clientWorkspace.AnswerFor(question)
		if len(answer.Texte) > 0 {
			fmt.Fprintf(outputWriter, answerLineTemplateConstant, answer.Texte)
		}
		if len(answer.Files) > 0 {
			fmt.Fprint(outputWriter, attachmentsHeadingConstant)
			for _, attachmentPath := range answer.Files {
				fmt.Fprintf(outputWriter, attachmentLineTemplateConstant, attachmentPath)
			}
		}
	}

	return nil
}

func questionHeaderLine(question catalog.Question) string {
	numeroLabel := questionHeaderMissingNumero
	if question.Numero != nil {
		numeroLabel = fmt.Sprintf(questionHeaderNumeroTemplate, *question.Numero)
	}

	var headerBuilder strings.Builder
	headerBuilder.WriteString(fmt.Sprintf(questionHeaderPrefixTemplate, numeroLabel, question.Date, question.Libelle))

	formattedMontant := catalog.FormatMontant(question.Montant)
	if len(formattedMontant) > 0 {
		headerBuilder.WriteString(fmt.Sprintf(questionHeaderMontantTemplate, formattedMontant))
	}
	if len(question.Piece) > 0 {
		headerBuilder.WriteString(fmt.Sprintf(questionHeaderPieceTemplate, question.Piece))
	}
	headerBuilder.WriteString(newlineConstant)
	return headerBuilder.String()
}

func headingLabel(value string, fallback string) string {
	if len(strings.TrimSpace(value)) == 0 {
		return fallback
	}
	return value
}

func stringSliceFlagValues(flagSet *pflag.FlagSet, flagName string) []string {
	values, _ := flagSet.GetStringSlice(flagName)
	return values
}
