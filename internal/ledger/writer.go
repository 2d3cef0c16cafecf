package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/temirov/qledger/internal/slug"
)

const (
	ledgerFileExtensionConstant        = ".csv"
	ledgerTemporaryFileSuffixConstant  = ".tmp"
	ledgerFilePermissionsConstant      = fs.FileMode(0o644)
	ledgerDirectoryPermissionsConstant = fs.FileMode(0o755)
	ledgerDirectoryErrorTemplate       = "unable to prepare responses directory %s: %w"
	ledgerReadErrorTemplate            = "unable to read ledger for client %s: %w"
	ledgerEncodeErrorTemplate          = "unable to encode ledger rows for client %s: %w"
	ledgerWriteErrorTemplate           = "unable to persist ledger for client %s: %w"
)

// Ledger column names, in the exact order downstream consumers expect.
const (
	columnClientIDConstant      = "client_id"
	columnTimestampUTCConstant  = "timestamp_utc"
	columnNumeroConstant        = "numero"
	columnDateConstant          = "date"
	columnLibelleConstant       = "libelle"
	columnMontantConstant       = "montant"
	columnPieceConstant         = "piece"
	columnGroupeConstant        = "groupe"
	columnSousCompteConstant    = "sous_compte"
	columnQuestionConstant      = "question"
	columnReponseTexteConstant  = "reponse_texte"
	columnJustificatifsConstant = "justificatifs"
)

// Record models one flattened ledger row: the question attributes, the
// finalized answer, and the joined attachment references. TimestampUTC is
// assigned during commit; values supplied by callers are overwritten.
type Record struct {
	ClientID      string
	TimestampUTC  string
	Numero        string
	Date          string
	Libelle       string
	Montant       string
	Piece         string
	Groupe        string
	SousCompte    string
	Question      string
	ReponseTexte  string
	Justificatifs string
}

// CSVRecord returns the row formatted for CSV encoding.
func (record Record) CSVRecord() []string {
	return []string{
		record.ClientID,
		record.TimestampUTC,
		record.Numero,
		record.Date,
		record.Libelle,
		record.Montant,
		record.Piece,
		record.Groupe,
		record.SousCompte,
		record.Question,
		record.ReponseTexte,
		record.Justificatifs,
	}
}

// HeaderRecord returns the fixed ledger column header.
func HeaderRecord() []string {
	return []string{
		columnClientIDConstant,
		columnTimestampUTCConstant,
		columnNumeroConstant,
		columnDateConstant,
		columnLibelleConstant,
		columnMontantConstant,
		columnPieceConstant,
		columnGroupeConstant,
		columnSousCompteConstant,
		columnQuestionConstant,
		columnReponseTexteConstant,
		columnJustificatifsConstant,
	}
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// FileSystem describes the filesystem operations the writer relies on.
type FileSystem interface {
	MkdirAll(path string, permissions fs.FileMode) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	Rename(oldPath string, newPath string) error
	Stat(path string) (fs.FileInfo, error)
}

// Writer appends committed submissions to per-client CSV ledgers.
type Writer struct {
	fileSystem    FileSystem
	responsesRoot string
	clock         Clock
}

// NewWriter constructs a ledger writer rooted at the provided directory.
func NewWriter(fileSystem FileSystem, responsesRoot string, clock Clock) *Writer {
	return &Writer{fileSystem: fileSystem, responsesRoot: responsesRoot, clock: clock}
}

// Commit stamps the rows with a single UTC timestamp and appends them to the
// client's existing record set, creating the ledger when none exists. The
// merged set is written through a temporary file and rename, so a failed
// commit never loses previously committed rows. The read-modify-write is not
// transactional; concurrent commits for one client are excluded by the
// single-writer-per-client deployment convention.
func (writer *Writer) Commit(clientIdentifier string, records []Record) error {
	if directoryError := writer.fileSystem.MkdirAll(writer.responsesRoot, ledgerDirectoryPermissionsConstant); directoryError != nil {
		return fmt.Errorf(ledgerDirectoryErrorTemplate, writer.responsesRoot, directoryError)
	}

	existingRows, readError := writer.readExistingRows(clientIdentifier)
	if readError != nil {
		return readError
	}

	commitTimestamp := writer.clock.Now().UTC().Format(time.RFC3339)

	var encodedLedger bytes.Buffer
	csvWriter := csv.NewWriter(&encodedLedger)
	if headerError := csvWriter.Write(HeaderRecord()); headerError != nil {
		return fmt.Errorf(ledgerEncodeErrorTemplate, clientIdentifier, headerError)
	}
	for _, existingRow := range existingRows {
		if rowError := csvWriter.Write(existingRow); rowError != nil {
			return fmt.Errorf(ledgerEncodeErrorTemplate, clientIdentifier, rowError)
		}
	}
	for _, record := range records {
		record.TimestampUTC = commitTimestamp
		if rowError := csvWriter.Write(record.CSVRecord()); rowError != nil {
			return fmt.Errorf(ledgerEncodeErrorTemplate, clientIdentifier, rowError)
		}
	}
	csvWriter.Flush()
	if flushError := csvWriter.Error(); flushError != nil {
		return fmt.Errorf(ledgerEncodeErrorTemplate, clientIdentifier, flushError)
	}

	ledgerPath := writer.LedgerPath(clientIdentifier)
	temporaryPath := ledgerPath + ledgerTemporaryFileSuffixConstant
	if writeError := writer.fileSystem.WriteFile(temporaryPath, encodedLedger.Bytes(), ledgerFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(ledgerWriteErrorTemplate, clientIdentifier, writeError)
	}
	if renameError := writer.fileSystem.Rename(temporaryPath, ledgerPath); renameError != nil {
		return fmt.Errorf(ledgerWriteErrorTemplate, clientIdentifier, renameError)
	}
	return nil
}

// ReadRows returns the client's committed rows without the header. A client
// with no ledger yields no rows.
func (writer *Writer) ReadRows(clientIdentifier string) ([][]string, error) {
	return writer.readExistingRows(clientIdentifier)
}

// LedgerPath resolves the ledger file location for the client.
func (writer *Writer) LedgerPath(clientIdentifier string) string {
	return filepath.Join(writer.responsesRoot, slug.Normalize(clientIdentifier)+ledgerFileExtensionConstant)
}

func (writer *Writer) readExistingRows(clientIdentifier string) ([][]string, error) {
	ledgerPath := writer.LedgerPath(clientIdentifier)
	if _, statError := writer.fileSystem.Stat(ledgerPath); statError != nil {
		return nil, nil
	}

	ledgerBytes, readError := writer.fileSystem.ReadFile(ledgerPath)
	if readError != nil {
		return nil, fmt.Errorf(ledgerReadErrorTemplate, clientIdentifier, readError)
	}

	csvReader := csv.NewReader(bytes.NewReader(ledgerBytes))
	csvReader.FieldsPerRecord = -1
	allRows, parseError := csvReader.ReadAll()
	if parseError != nil {
		return nil, fmt.Errorf(ledgerReadErrorTemplate, clientIdentifier, parseError)
	}

	if len(allRows) == 0 {
		return nil, nil
	}
	return allRows[1:], nil
}
