package draft

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/temirov/qledger/internal/slug"
)

const (
	draftFileExtensionConstant        = ".json"
	draftTemporaryFileSuffixConstant  = ".tmp"
	draftFilePermissionsConstant      = fs.FileMode(0o644)
	draftDirectoryPermissionsConstant = fs.FileMode(0o755)
	draftSerializationIndentConstant  = "  "
	draftDirectoryErrorTemplate       = "unable to prepare drafts directory %s: %w"
	draftSerializeErrorTemplate       = "unable to serialize draft for client %s: %w"
	draftWriteErrorTemplate           = "unable to persist draft for client %s: %w"
)

// FileSystem describes the filesystem operations the store relies on.
type FileSystem interface {
	MkdirAll(path string, permissions fs.FileMode) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	Rename(oldPath string, newPath string) error
}

// Store persists one draft file per client slug under a drafts directory.
type Store struct {
	fileSystem FileSystem
	draftsRoot string
}

// NewStore constructs a draft store rooted at the provided directory.
func NewStore(fileSystem FileSystem, draftsRoot string) *Store {
	return &Store{fileSystem: fileSystem, draftsRoot: draftsRoot}
}

// Load reads the persisted draft for the client. Missing, unreadable, or
// corrupt draft files all yield an empty draft; load never fails.
func (store *Store) Load(clientIdentifier string) Draft {
	draftBytes, readError := store.fileSystem.ReadFile(store.DraftPath(clientIdentifier))
	if readError != nil {
		return NewDraft()
	}

	var persistedDraft Draft
	if unmarshalError := json.Unmarshal(draftBytes, &persistedDraft); unmarshalError != nil {
		return NewDraft()
	}
	if persistedDraft.Answers == nil {
		persistedDraft.Answers = map[string]Answer{}
	}
	return persistedDraft
}

// Save serializes the full draft and replaces any previously persisted state.
// The draft is written to a temporary file and renamed into place so a failed
// save leaves the prior draft intact.
func (store *Store) Save(clientIdentifier string, clientDraft Draft) error {
	if directoryError := store.fileSystem.MkdirAll(store.draftsRoot, draftDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(draftDirectoryErrorTemplate, store.draftsRoot, directoryError)
	}

	draftBytes, marshalError := json.MarshalIndent(clientDraft, "", draftSerializationIndentConstant)
	if marshalError != nil {
		return fmt.Errorf(draftSerializeErrorTemplate, clientIdentifier, marshalError)
	}

	draftPath := store.DraftPath(clientIdentifier)
	temporaryPath := draftPath + draftTemporaryFileSuffixConstant
	if writeError := store.fileSystem.WriteFile(temporaryPath, draftBytes, draftFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(draftWriteErrorTemplate, clientIdentifier, writeError)
	}
	if renameError := store.fileSystem.Rename(temporaryPath, draftPath); renameError != nil {
		return fmt.Errorf(draftWriteErrorTemplate, clientIdentifier, renameError)
	}
	return nil
}

// Clear replaces the persisted draft with an empty one, the post-commit purge.
func (store *Store) Clear(clientIdentifier string) error {
	return store.Save(clientIdentifier, NewDraft())
}

// DraftPath resolves the draft file location for the client.
func (store *Store) DraftPath(clientIdentifier string) string {
	return filepath.Join(store.draftsRoot, slug.Normalize(clientIdentifier)+draftFileExtensionConstant)
}
