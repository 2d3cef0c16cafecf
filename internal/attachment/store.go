package attachment

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/temirov/qledger/internal/slug"
)

const (
	attachmentFileNameTemplateConstant     = "%s_%s_justif_%d%s"
	attachmentNumeroTemplateConstant       = "%03d"
	attachmentMissingNumeroConstant        = "000"
	attachmentFilePermissionsConstant      = fs.FileMode(0o644)
	attachmentDirectoryPermissionsConstant = fs.FileMode(0o755)
	attachmentDirectoryErrorTemplate       = "unable to prepare upload directory %s: %w"
	attachmentWriteErrorTemplate           = "unable to store attachment %s: %w"
	attachmentRelativeErrorTemplate        = "unable to resolve relative path for %s: %w"
)

// FileSystem describes the filesystem operations the store relies on.
type FileSystem interface {
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// Upload carries one uploaded file: the name declared by the uploader, used
// only for its extension, and the raw content.
type Upload struct {
	DeclaredName string
	Content      []byte
}

// Store persists uploads under a per-client directory and returns paths
// relative to the data root, the form they take in drafts and ledger rows.
type Store struct {
	fileSystem  FileSystem
	dataRoot    string
	uploadsRoot string
}

// NewStore constructs an attachment store. Stored paths are reported relative
// to dataRoot; bytes live under uploadsRoot.
func NewStore(fileSystem FileSystem, dataRoot string, uploadsRoot string) *Store {
	return &Store{fileSystem: fileSystem, dataRoot: dataRoot, uploadsRoot: uploadsRoot}
}

// Save persists a single upload under the deterministic name
// {slug}_{numero:03d}_justif_{sequence}{ext} and returns its relative path.
// The caller supplies the 1-based sequence number.
func (store *Store) Save(clientIdentifier string, numero *int, upload Upload, sequence int) (string, error) {
	clientSlug := slug.Normalize(clientIdentifier)
	clientDirectory := filepath.Join(store.uploadsRoot, clientSlug)
	if directoryError := store.fileSystem.MkdirAll(clientDirectory, attachmentDirectoryPermissionsConstant); directoryError != nil {
		return "", fmt.Errorf(attachmentDirectoryErrorTemplate, clientDirectory, directoryError)
	}

	fileName := fmt.Sprintf(
		attachmentFileNameTemplateConstant,
		clientSlug,
		numeroString(numero),
		sequence,
		strings.ToLower(filepath.Ext(upload.DeclaredName)),
	)
	storedPath := filepath.Join(clientDirectory, fileName)

	if writeError := store.fileSystem.WriteFile(storedPath, upload.Content, attachmentFilePermissionsConstant); writeError != nil {
		return "", fmt.Errorf(attachmentWriteErrorTemplate, fileName, writeError)
	}

	relativePath, relativeError := filepath.Rel(store.dataRoot, storedPath)
	if relativeError != nil {
		return "", fmt.Errorf(attachmentRelativeErrorTemplate, storedPath, relativeError)
	}
	return relativePath, nil
}

// SaveAll persists a batch of uploads, continuing the sequence from
// existingCount. A failed upload is skipped and reported without aborting the
// batch; sequence numbers are consumed only by successful writes, so stored
// sequences stay gapless. The returned paths cover the successful uploads in
// order, and the returned error joins the individual failures.
func (store *Store) SaveAll(clientIdentifier string, numero *int, uploads []Upload, existingCount int) ([]string, error) {
	var storedPaths []string
	var saveErrors []error

	sequence := existingCount + 1
	for _, upload := range uploads {
		storedPath, saveError := store.Save(clientIdentifier, numero, upload, sequence)
		if saveError != nil {
			saveErrors = append(saveErrors, saveError)
			continue
		}
		storedPaths = append(storedPaths, storedPath)
		sequence++
	}

	return storedPaths, errors.Join(saveErrors...)
}

func numeroString(numero *int) string {
	if numero == nil {
		return attachmentMissingNumeroConstant
	}
	return fmt.Sprintf(attachmentNumeroTemplateConstant, *numero)
}
