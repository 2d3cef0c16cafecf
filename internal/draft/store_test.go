package draft_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/qledger/internal/draft"
	"github.com/temirov/qledger/internal/storage"
)

const testClientIdentifierConstant = "Dupont & Fils"

func newTestStore(testInstance *testing.T) (*draft.Store, string) {
	draftsRoot := filepath.Join(testInstance.TempDir(), "drafts")
	return draft.NewStore(storage.OSFileSystem{}, draftsRoot), draftsRoot
}

func TestSaveThenLoadRoundTrip(testInstance *testing.T) {
	store, _ := newTestStore(testInstance)

	clientDraft := draft.NewDraft()
	clientDraft.SetText("q_1", "payé")
	clientDraft.SetText("q_2", "texte avec \"guillemets\"\net saut de ligne")
	clientDraft.SetText("q_3", "")
	clientDraft.AppendFiles("q_1", []string{"uploads/dupont_fils/dupont_fils_001_justif_1.pdf"})

	require.NoError(testInstance, store.Save(testClientIdentifierConstant, clientDraft))

	reloadedDraft := store.Load(testClientIdentifierConstant)
	require.Equal(testInstance, clientDraft, reloadedDraft)
}

func TestLoadMissingDraftIsEmpty(testInstance *testing.T) {
	store, _ := newTestStore(testInstance)

	loadedDraft := store.Load("unknown client")
	require.NotNil(testInstance, loadedDraft.Answers)
	require.Empty(testInstance, loadedDraft.Answers)
}

func TestLoadCorruptDraftIsEmpty(testInstance *testing.T) {
	store, draftsRoot := newTestStore(testInstance)

	require.NoError(testInstance, os.MkdirAll(draftsRoot, 0o755))
	corruptPath := store.DraftPath(testClientIdentifierConstant)
	require.NoError(testInstance, os.WriteFile(corruptPath, []byte("{not json"), 0o644))

	loadedDraft := store.Load(testClientIdentifierConstant)
	require.NotNil(testInstance, loadedDraft.Answers)
	require.Empty(testInstance, loadedDraft.Answers)
}

func TestSaveOverwritesWholesale(testInstance *testing.T) {
	store, _ := newTestStore(testInstance)

	firstDraft := draft.NewDraft()
	firstDraft.SetText("q_1", "première version")
	firstDraft.SetText("q_2", "à supprimer")
	require.NoError(testInstance, store.Save(testClientIdentifierConstant, firstDraft))

	secondDraft := draft.NewDraft()
	secondDraft.SetText("q_1", "seconde version")
	require.NoError(testInstance, store.Save(testClientIdentifierConstant, secondDraft))

	reloadedDraft := store.Load(testClientIdentifierConstant)
	require.Equal(testInstance, secondDraft, reloadedDraft)
}

func TestSaveLeavesNoTemporaryFile(testInstance *testing.T) {
	store, draftsRoot := newTestStore(testInstance)

	require.NoError(testInstance, store.Save(testClientIdentifierConstant, draft.NewDraft()))

	directoryEntries, readError := os.ReadDir(draftsRoot)
	require.NoError(testInstance, readError)
	require.Len(testInstance, directoryEntries, 1)
	require.Equal(testInstance, "dupont_fils.json", directoryEntries[0].Name())
}

func TestClearPersistsEmptyDraft(testInstance *testing.T) {
	store, _ := newTestStore(testInstance)

	clientDraft := draft.NewDraft()
	clientDraft.SetText("q_1", "payé")
	require.NoError(testInstance, store.Save(testClientIdentifierConstant, clientDraft))

	require.NoError(testInstance, store.Clear(testClientIdentifierConstant))

	reloadedDraft := store.Load(testClientIdentifierConstant)
	require.Empty(testInstance, reloadedDraft.Answers)
}

func TestSetTextPreservesFiles(testInstance *testing.T) {
	clientDraft := draft.NewDraft()
	clientDraft.AppendFiles("q_1", []string{"a.pdf", "b.png"})
	clientDraft.SetText("q_1", "révisé")

	answer := clientDraft.AnswerFor("q_1")
	require.Equal(testInstance, "révisé", answer.Texte)
	require.Equal(testInstance, []string{"a.pdf", "b.png"}, answer.Files)
}
