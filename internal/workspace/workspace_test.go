package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/qledger/internal/attachment"
	"github.com/temirov/qledger/internal/catalog"
	"github.com/temirov/qledger/internal/draft"
	"github.com/temirov/qledger/internal/ledger"
	"github.com/temirov/qledger/internal/storage"
	"github.com/temirov/qledger/internal/workspace"
)

const questionnaireCatalogDocumentConstant = `{
  "client_id": "Dupont & Fils",
  "questions": [
    {
      "numero": 1,
      "date": "2025-02-24",
      "libelle": "Facture X",
      "montant": 1234.5,
      "groupe": "Fournisseurs (401)",
      "sous_compte": "401000",
      "question": "À quoi correspond cette facture ?"
    },
    {
      "numero": 2,
      "date": "2025-02-25",
      "libelle": "Avoir Y",
      "groupe": "Fournisseurs (401)",
      "sous_compte": "401000",
      "question": "Merci de préciser."
    }
  ]
}`

type stubClock struct {
	current time.Time
}

func (clock *stubClock) Now() time.Time {
	return clock.current
}

type workspaceFixture struct {
	dataRoot string
	clock    *stubClock
	catalog  catalog.Catalog
}

func newWorkspaceFixture(testInstance *testing.T, catalogDocument string) *workspaceFixture {
	loadedCatalog, loadError := catalog.Load(strings.NewReader(catalogDocument))
	require.NoError(testInstance, loadError)

	return &workspaceFixture{
		dataRoot: testInstance.TempDir(),
		clock:    &stubClock{current: time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)},
		catalog:  loadedCatalog,
	}
}

// open builds a fresh workspace over the fixture's directories, simulating a
// new editing session against the same persisted state.
func (fixture *workspaceFixture) open(testInstance *testing.T) *workspace.ClientWorkspace {
	testInstance.Helper()
	fileSystem := storage.OSFileSystem{}

	draftStore := draft.NewStore(fileSystem, filepath.Join(fixture.dataRoot, "drafts"))
	attachmentStore := attachment.NewStore(fileSystem, fixture.dataRoot, filepath.Join(fixture.dataRoot, "uploads"))
	ledgerWriter := ledger.NewWriter(fileSystem, filepath.Join(fixture.dataRoot, "responses"), fixture.clock)

	return workspace.NewClientWorkspace(fixture.catalog, draftStore, attachmentStore, ledgerWriter, nil)
}

func TestAnswerAndAttachScenario(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)
	clientWorkspace := fixture.open(testInstance)

	question, findError := clientWorkspace.FindQuestion("1")
	require.NoError(testInstance, findError)

	require.NoError(testInstance, clientWorkspace.SetAnswerText(question, "payé"))

	storedPaths, attachError := clientWorkspace.AttachFiles(question, []attachment.Upload{
		{DeclaredName: "a.pdf", Content: []byte("facture")},
		{DeclaredName: "b.png", Content: []byte("capture")},
	})
	require.NoError(testInstance, attachError)
	require.Equal(testInstance, []string{
		filepath.Join("uploads", "dupont_fils", "dupont_fils_001_justif_1.pdf"),
		filepath.Join("uploads", "dupont_fils", "dupont_fils_001_justif_2.png"),
	}, storedPaths)

	answer := clientWorkspace.AnswerFor(question)
	require.Equal(testInstance, "payé", answer.Texte)
	require.Equal(testInstance, storedPaths, answer.Files)

	reopenedWorkspace := fixture.open(testInstance)
	reopenedAnswer := reopenedWorkspace.AnswerFor(question)
	require.Equal(testInstance, "payé", reopenedAnswer.Texte, "draft must survive sessions")
	require.Equal(testInstance, storedPaths, reopenedAnswer.Files)
}

func TestAttachmentSequenceContinuesAcrossSessions(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)

	firstSession := fixture.open(testInstance)
	question, findError := firstSession.FindQuestion("1")
	require.NoError(testInstance, findError)
	_, firstAttachError := firstSession.AttachFiles(question, []attachment.Upload{{DeclaredName: "a.pdf", Content: []byte("un")}})
	require.NoError(testInstance, firstAttachError)

	secondSession := fixture.open(testInstance)
	storedPaths, secondAttachError := secondSession.AttachFiles(question, []attachment.Upload{{DeclaredName: "b.pdf", Content: []byte("deux")}})
	require.NoError(testInstance, secondAttachError)
	require.Equal(testInstance, []string{
		filepath.Join("uploads", "dupont_fils", "dupont_fils_001_justif_2.pdf"),
	}, storedPaths)

	firstStoredContent, readError := os.ReadFile(filepath.Join(fixture.dataRoot, "uploads", "dupont_fils", "dupont_fils_001_justif_1.pdf"))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, []byte("un"), firstStoredContent)
}

func TestCommitTwiceAppendsAllQuestions(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)
	clientWorkspace := fixture.open(testInstance)

	question, findError := clientWorkspace.FindQuestion("1")
	require.NoError(testInstance, findError)
	require.NoError(testInstance, clientWorkspace.SetAnswerText(question, "payé"))

	ledgerPath, firstCommitError := clientWorkspace.Commit(true)
	require.NoError(testInstance, firstCommitError)
	require.FileExists(testInstance, ledgerPath)

	fixture.clock.current = fixture.clock.current.Add(7 * time.Second)

	secondSession := fixture.open(testInstance)
	_, secondCommitError := secondSession.Commit(true)
	require.NoError(testInstance, secondCommitError)

	fileSystem := storage.OSFileSystem{}
	ledgerWriter := ledger.NewWriter(fileSystem, filepath.Join(fixture.dataRoot, "responses"), fixture.clock)
	committedRows, readError := ledgerWriter.ReadRows(fixture.catalog.ClientID)
	require.NoError(testInstance, readError)
	require.Len(testInstance, committedRows, 2*len(fixture.catalog.Questions))

	firstCommitTimestamp := committedRows[0][1]
	require.Equal(testInstance, firstCommitTimestamp, committedRows[1][1], "rows of one commit share a timestamp")
	secondCommitTimestamp := committedRows[2][1]
	require.Equal(testInstance, secondCommitTimestamp, committedRows[3][1], "rows of one commit share a timestamp")
	require.NotEqual(testInstance, firstCommitTimestamp, secondCommitTimestamp)

	require.Equal(testInstance, "payé", committedRows[0][10])
	require.Empty(testInstance, committedRows[2][10], "draft purge empties the re-sent answers")
}

func TestCommitJoinsJustificatifs(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)
	clientWorkspace := fixture.open(testInstance)

	question, findError := clientWorkspace.FindQuestion("1")
	require.NoError(testInstance, findError)
	storedPaths, attachError := clientWorkspace.AttachFiles(question, []attachment.Upload{
		{DeclaredName: "a.pdf", Content: []byte("un")},
		{DeclaredName: "b.png", Content: []byte("deux")},
	})
	require.NoError(testInstance, attachError)

	_, commitError := clientWorkspace.Commit(false)
	require.NoError(testInstance, commitError)

	ledgerWriter := ledger.NewWriter(storage.OSFileSystem{}, filepath.Join(fixture.dataRoot, "responses"), fixture.clock)
	committedRows, readError := ledgerWriter.ReadRows(fixture.catalog.ClientID)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, strings.Join(storedPaths, "; "), committedRows[0][11])

	answer := clientWorkspace.AnswerFor(question)
	require.Equal(testInstance, storedPaths, answer.Files, "commit without purge keeps the draft")
}

func TestNumeroLessQuestionDoesNotCrash(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, `{
  "client_id": "Dupont & Fils",
  "questions": [
    {"date": "2025-03-02", "libelle": "Écriture sans numéro", "groupe": "Divers", "sous_compte": "471000", "question": "Pouvez-vous justifier ?"}
  ]
}`)
	clientWorkspace := fixture.open(testInstance)

	question := clientWorkspace.Questions()[0]
	require.True(testInstance, strings.HasPrefix(question.Key(), "q_h"))

	require.NoError(testInstance, clientWorkspace.SetAnswerText(question, "écart de caisse"))

	storedPaths, attachError := clientWorkspace.AttachFiles(question, []attachment.Upload{{DeclaredName: "note.txt", Content: []byte("détail")}})
	require.NoError(testInstance, attachError)
	require.Equal(testInstance, []string{
		filepath.Join("uploads", "dupont_fils", "dupont_fils_000_justif_1.txt"),
	}, storedPaths)

	_, commitError := clientWorkspace.Commit(true)
	require.NoError(testInstance, commitError)

	ledgerWriter := ledger.NewWriter(storage.OSFileSystem{}, filepath.Join(fixture.dataRoot, "responses"), fixture.clock)
	committedRows, readError := ledgerWriter.ReadRows(fixture.catalog.ClientID)
	require.NoError(testInstance, readError)
	require.Len(testInstance, committedRows, 1)
	require.Empty(testInstance, committedRows[0][2], "numero column stays empty for numero-less questions")
}

func TestFindQuestionResolvesEquivalentReferences(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)
	clientWorkspace := fixture.open(testInstance)

	testCases := []struct {
		name      string
		reference string
	}{
		{name: "plain_numero", reference: "1"},
		{name: "zero_padded_numero", reference: "001"},
		{name: "draft_key", reference: "q_1"},
		{name: "surrounding_whitespace", reference: " 001 "},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			question, findError := clientWorkspace.FindQuestion(testCase.reference)
			require.NoError(subtest, findError)
			require.NotNil(subtest, question.Numero)
			require.Equal(subtest, 1, *question.Numero)
		})
	}
}

func TestFindQuestionFailures(testInstance *testing.T) {
	fixture := newWorkspaceFixture(testInstance, questionnaireCatalogDocumentConstant)
	clientWorkspace := fixture.open(testInstance)

	_, findError := clientWorkspace.FindQuestion("99")
	require.ErrorIs(testInstance, findError, workspace.ErrQuestionNotFound)

	byKey, keyError := clientWorkspace.FindQuestion("q_2")
	require.NoError(testInstance, keyError)
	require.Equal(testInstance, 2, *byKey.Numero)
}
