package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

const (
	questionKeyNumeroTemplateConstant   = "q_%d"
	questionKeyFallbackTemplateConstant = "q_h%016x"
	questionKeyHashSeparatorConstant    = "|"
	jsonNullLiteralConstant             = "null"
)

// Question models a single catalog record. Optional catalog fields are
// resolved to documented defaults during decoding: a missing or unparseable
// numero becomes nil, a missing montant becomes the empty string, and a
// non-numeric montant keeps its raw representation.
type Question struct {
	Numero     *int
	Date       string
	Libelle    string
	Montant    string
	Piece      string
	Groupe     string
	SousCompte string
	Prompt     string
	Type       string
}

type questionDocument struct {
	Numero     json.RawMessage `json:"numero"`
	Date       string          `json:"date"`
	Libelle    string          `json:"libelle"`
	Montant    json.RawMessage `json:"montant"`
	Piece      string          `json:"piece"`
	Groupe     string          `json:"groupe"`
	SousCompte string          `json:"sous_compte"`
	Prompt     string          `json:"question"`
	Type       string          `json:"type"`
}

// UnmarshalJSON decodes a raw catalog record, absorbing type coercion failures
// instead of surfacing them.
func (question *Question) UnmarshalJSON(documentBytes []byte) error {
	var document questionDocument
	if unmarshalError := json.Unmarshal(documentBytes, &document); unmarshalError != nil {
		return unmarshalError
	}

	question.Numero = decodeOptionalInteger(document.Numero)
	question.Date = document.Date
	question.Libelle = document.Libelle
	question.Montant = decodeRawAmount(document.Montant)
	question.Piece = document.Piece
	question.Groupe = document.Groupe
	question.SousCompte = document.SousCompte
	question.Prompt = document.Prompt
	question.Type = document.Type

	return nil
}

// Key derives the identity under which the question's answer is indexed in
// drafts. Questions carrying a numero use it directly; numero-less questions
// fall back to a content hash over the fields that identify them, so their
// keys survive catalog reloads.
func (question Question) Key() string {
	if question.Numero != nil {
		return fmt.Sprintf(questionKeyNumeroTemplateConstant, *question.Numero)
	}

	contentHash := fnv.New64a()
	hashedFields := []string{question.Date, question.Libelle, question.Groupe, question.SousCompte}
	for fieldIndex, hashedField := range hashedFields {
		if fieldIndex > 0 {
			contentHash.Write([]byte(questionKeyHashSeparatorConstant))
		}
		contentHash.Write([]byte(hashedField))
	}
	return fmt.Sprintf(questionKeyFallbackTemplateConstant, contentHash.Sum64())
}

// NumeroString renders the numero for reports, or an empty string when the
// question carries none.
func (question Question) NumeroString() string {
	if question.Numero == nil {
		return ""
	}
	return strconv.Itoa(*question.Numero)
}

func decodeOptionalInteger(rawValue json.RawMessage) *int {
	literal := strings.TrimSpace(string(bytes.Trim(rawValue, "\"")))
	if len(literal) == 0 || literal == jsonNullLiteralConstant {
		return nil
	}

	if integerValue, integerError := strconv.Atoi(literal); integerError == nil {
		return &integerValue
	}

	if floatValue, floatError := strconv.ParseFloat(literal, 64); floatError == nil {
		integerValue := int(floatValue)
		return &integerValue
	}

	return nil
}

func decodeRawAmount(rawValue json.RawMessage) string {
	if len(rawValue) == 0 {
		return ""
	}

	var amountText string
	if unmarshalError := json.Unmarshal(rawValue, &amountText); unmarshalError == nil {
		return amountText
	}

	literal := strings.TrimSpace(string(rawValue))
	if literal == jsonNullLiteralConstant {
		return ""
	}
	return literal
}
