package form

// Shared flag names and descriptions.
const (
	flagCatalogName           = "catalog"
	flagCatalogDescription    = "Path to the question catalog JSON file."
	flagQuestionName          = "question"
	flagQuestionDescription   = "Question reference: its numero or its draft key."
	flagTextName              = "text"
	flagTextDescription       = "Response text to record for the question."
	flagGroupeName            = "groupe"
	flagGroupeDescription     = "Limit the listing to the provided groupes."
	flagSousCompteName        = "sous-compte"
	flagSousCompteDescription = "Limit the listing to the provided sous-comptes."
	flagSearchName            = "search"
	flagSearchDescription     = "Limit the listing to questions whose libelle or prompt contains the text."
	flagKeepDraftName         = "keep-draft"
	flagKeepDraftDescription  = "Keep the draft instead of purging it after the commit."
)

// Error messages surfaced to the caller.
const (
	errorCatalogPathMissingConstant  = "catalog path required: pass --catalog or configure form.catalog"
	errorQuestionFlagMissingConstant = "question reference required: pass --question"
	errorNoFilesProvidedConstant     = "at least one file argument is required"
)

// Output templates.
const (
	clientSummaryTemplateConstant    = "Client: %s — %d question(s)\n"
	groupHeadingTemplateConstant     = "\n%s — sous-compte %s\n"
	groupHeadingFallbackConstant     = "(sans groupe)"
	sousCompteFallbackConstant       = "-"
	questionPromptTemplateConstant   = "  %s\n"
	answerLineTemplateConstant       = "  réponse: %s\n"
	attachmentLineTemplateConstant   = "    - %s\n"
	attachmentsHeadingConstant       = "  justificatifs:\n"
	answerSavedTemplateConstant      = "answer recorded for question %s\n"
	attachmentStoredTemplateConstant = "stored %s\n"
	submissionResultTemplateConstant = "responses committed to %s\n"
	questionHeaderPrefixTemplate     = "Q%s — %s — %s"
	questionHeaderNumeroTemplate     = "%03d"
	questionHeaderMontantTemplate    = " — %s"
	questionHeaderPieceTemplate      = " — pièce: %s"
	questionHeaderMissingNumero      = "-"
	newlineConstant                  = "\n"
)
