package workspace

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/qledger/internal/attachment"
	"github.com/temirov/qledger/internal/catalog"
	"github.com/temirov/qledger/internal/draft"
	"github.com/temirov/qledger/internal/ledger"
)

const (
	justificatifsSeparatorConstant = "; "

	draftSavedMessageConstant        = "draft saved"
	attachmentsStoredMessageConstant = "attachments stored"
	submissionCommittedMessage       = "submission committed"

	logFieldClientConstant      = "client_id"
	logFieldQuestionKeyConstant = "question_key"
	logFieldStoredCountConstant = "stored_count"
	logFieldRowCountConstant    = "row_count"
	logFieldLedgerPathConstant  = "ledger_path"
)

// ErrQuestionNotFound reports a question reference matching nothing in the
// loaded catalog.
var ErrQuestionNotFound = errors.New("question not found in catalog")

// DraftStore abstracts draft persistence for the workspace.
type DraftStore interface {
	Load(clientIdentifier string) draft.Draft
	Save(clientIdentifier string, clientDraft draft.Draft) error
	Clear(clientIdentifier string) error
}

// AttachmentStore abstracts justification file persistence for the workspace.
type AttachmentStore interface {
	SaveAll(clientIdentifier string, numero *int, uploads []attachment.Upload, existingCount int) ([]string, error)
}

// LedgerWriter abstracts submission commits for the workspace.
type LedgerWriter interface {
	Commit(clientIdentifier string, records []ledger.Record) error
	LedgerPath(clientIdentifier string) string
}

// ClientWorkspace holds the editing session state for one client.
type ClientWorkspace struct {
	questionCatalog catalog.Catalog
	draftStore      DraftStore
	attachmentStore AttachmentStore
	ledgerWriter    LedgerWriter
	currentDraft    draft.Draft
	logger          *zap.Logger
}

// NewClientWorkspace assembles a workspace for the catalog's client and loads
// any previously persisted draft.
func NewClientWorkspace(questionCatalog catalog.Catalog, draftStore DraftStore, attachmentStore AttachmentStore, ledgerWriter LedgerWriter, logger *zap.Logger) *ClientWorkspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientWorkspace{
		questionCatalog: questionCatalog,
		draftStore:      draftStore,
		attachmentStore: attachmentStore,
		ledgerWriter:    ledgerWriter,
		currentDraft:    draftStore.Load(questionCatalog.ClientID),
		logger:          logger,
	}
}

// ClientID returns the raw client identifier from the catalog.
func (clientWorkspace *ClientWorkspace) ClientID() string {
	return clientWorkspace.questionCatalog.ClientID
}

// Questions returns the catalog questions in display order.
func (clientWorkspace *ClientWorkspace) Questions() []catalog.Question {
	return catalog.SortedForDisplay(clientWorkspace.questionCatalog.Questions)
}

// Draft exposes the current in-memory draft state.
func (clientWorkspace *ClientWorkspace) Draft() draft.Draft {
	return clientWorkspace.currentDraft
}

// AnswerFor returns the draft answer recorded for the question.
func (clientWorkspace *ClientWorkspace) AnswerFor(question catalog.Question) draft.Answer {
	return clientWorkspace.currentDraft.AnswerFor(question.Key())
}

// FindQuestion resolves a question by its draft key or by its numero. Numero
// references are compared numerically, so zero-padded forms like "001" resolve
// the same question as "1".
func (clientWorkspace *ClientWorkspace) FindQuestion(questionReference string) (catalog.Question, error) {
	trimmedReference := strings.TrimSpace(questionReference)
	referenceNumero, referenceNumeroError := strconv.Atoi(trimmedReference)
	for _, question := range clientWorkspace.questionCatalog.Questions {
		if question.Key() == trimmedReference {
			return question, nil
		}
		if question.Numero == nil {
			continue
		}
		if question.NumeroString() == trimmedReference {
			return question, nil
		}
		if referenceNumeroError == nil && *question.Numero == referenceNumero {
			return question, nil
		}
	}
	return catalog.Question{}, ErrQuestionNotFound
}

// SetAnswerText merges the response text into the question's draft answer and
// persists the draft immediately.
func (clientWorkspace *ClientWorkspace) SetAnswerText(question catalog.Question, responseText string) error {
	clientWorkspace.currentDraft.SetText(question.Key(), responseText)
	return clientWorkspace.saveDraft()
}

// AttachFiles stores the uploads for the question, continuing the attachment
// sequence from the files already recorded in the draft, and appends the
// stored paths to the draft answer. Successfully stored files are recorded in
// the draft even when later uploads in the batch fail.
func (clientWorkspace *ClientWorkspace) AttachFiles(question catalog.Question, uploads []attachment.Upload) ([]string, error) {
	existingCount := len(clientWorkspace.AnswerFor(question).Files)
	storedPaths, saveError := clientWorkspace.attachmentStore.SaveAll(clientWorkspace.ClientID(), question.Numero, uploads, existingCount)

	if len(storedPaths) > 0 {
		clientWorkspace.currentDraft.AppendFiles(question.Key(), storedPaths)
		if draftError := clientWorkspace.saveDraft(); draftError != nil {
			return storedPaths, errors.Join(saveError, draftError)
		}
		clientWorkspace.logger.Info(
			attachmentsStoredMessageConstant,
			zap.String(logFieldClientConstant, clientWorkspace.ClientID()),
			zap.String(logFieldQuestionKeyConstant, question.Key()),
			zap.Int(logFieldStoredCountConstant, len(storedPaths)),
		)
	}

	return storedPaths, saveError
}

// Commit flattens every catalog question with its current answer and
// attachment references into ledger rows and appends them to the client's
// record set. When purgeDraft is set the persisted draft is cleared after a
// successful commit. The committed ledger path is returned for display.
func (clientWorkspace *ClientWorkspace) Commit(purgeDraft bool) (string, error) {
	orderedQuestions := clientWorkspace.Questions()
	records := make([]ledger.Record, 0, len(orderedQuestions))
	for _, question := range orderedQuestions {
		answer := clientWorkspace.AnswerFor(question)
		records = append(records, ledger.Record{
			ClientID:      clientWorkspace.ClientID(),
			Numero:        question.NumeroString(),
			Date:          question.Date,
			Libelle:       question.Libelle,
			Montant:       question.Montant,
			Piece:         question.Piece,
			Groupe:        question.Groupe,
			SousCompte:    question.SousCompte,
			Question:      question.Prompt,
			ReponseTexte:  answer.Texte,
			Justificatifs: strings.Join(answer.Files, justificatifsSeparatorConstant),
		})
	}

	if commitError := clientWorkspace.ledgerWriter.Commit(clientWorkspace.ClientID(), records); commitError != nil {
		return "", commitError
	}

	ledgerPath := clientWorkspace.ledgerWriter.LedgerPath(clientWorkspace.ClientID())
	clientWorkspace.logger.Info(
		submissionCommittedMessage,
		zap.String(logFieldClientConstant, clientWorkspace.ClientID()),
		zap.Int(logFieldRowCountConstant, len(records)),
		zap.String(logFieldLedgerPathConstant, ledgerPath),
	)

	if purgeDraft {
		if clearError := clientWorkspace.draftStore.Clear(clientWorkspace.ClientID()); clearError != nil {
			return ledgerPath, clearError
		}
		clientWorkspace.currentDraft = draft.NewDraft()
	}

	return ledgerPath, nil
}

func (clientWorkspace *ClientWorkspace) saveDraft() error {
	if saveError := clientWorkspace.draftStore.Save(clientWorkspace.ClientID(), clientWorkspace.currentDraft); saveError != nil {
		return saveError
	}
	clientWorkspace.logger.Debug(
		draftSavedMessageConstant,
		zap.String(logFieldClientConstant, clientWorkspace.ClientID()),
	)
	return nil
}
