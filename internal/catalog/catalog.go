package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	clientWithoutIdentifierConstant = "client_sans_id"
	catalogParseErrorTemplate       = "unable to parse question catalog: %w"
	catalogReadErrorTemplate        = "unable to read question catalog %s: %w"
	jsonArrayPrefixConstant         = "["
)

// ErrQuestionsMissing reports a catalog document without a questions list.
var ErrQuestionsMissing = errors.New("catalog field questions missing or not a list")

// Catalog holds a fully resolved question catalog for one client.
type Catalog struct {
	ClientID  string
	Questions []Question
}

type catalogDocument struct {
	ClientID  string          `json:"client_id"`
	Questions json.RawMessage `json:"questions"`
}

// Load decodes a catalog document from the provided reader. A document whose
// questions field is absent or not a list fails validation outright; no
// partial catalog is returned. A missing client identifier is replaced by a
// fixed sentinel.
func Load(documentReader io.Reader) (Catalog, error) {
	var document catalogDocument
	decoder := json.NewDecoder(documentReader)
	if decodeError := decoder.Decode(&document); decodeError != nil {
		return Catalog{}, fmt.Errorf(catalogParseErrorTemplate, decodeError)
	}

	questionsLiteral := strings.TrimSpace(string(document.Questions))
	if !strings.HasPrefix(questionsLiteral, jsonArrayPrefixConstant) {
		return Catalog{}, ErrQuestionsMissing
	}

	var questions []Question
	if unmarshalError := json.Unmarshal(document.Questions, &questions); unmarshalError != nil {
		return Catalog{}, fmt.Errorf(catalogParseErrorTemplate, unmarshalError)
	}

	clientIdentifier := document.ClientID
	if len(strings.TrimSpace(clientIdentifier)) == 0 {
		clientIdentifier = clientWithoutIdentifierConstant
	}

	return Catalog{ClientID: clientIdentifier, Questions: questions}, nil
}

// LoadFile reads and decodes the catalog document stored at the provided path.
func LoadFile(catalogPath string) (Catalog, error) {
	catalogFile, openError := os.Open(catalogPath)
	if openError != nil {
		return Catalog{}, fmt.Errorf(catalogReadErrorTemplate, catalogPath, openError)
	}
	defer catalogFile.Close()

	return Load(catalogFile)
}
