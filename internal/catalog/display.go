package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	montantDecimalSeparatorConstant  = ","
	montantThousandsGroupSize        = 3
	montantThousandsSeparatorRune    = ' '
	montantCurrencySuffixConstant    = " €"
	montantNegativeSignConstant      = "-"
	displaySearchFieldJoinerConstant = " "
)

// SortedForDisplay returns a copy of the questions ordered the way the form
// presents them: by groupe, sous-compte, numero, date, and libelle.
func SortedForDisplay(questions []Question) []Question {
	ordered := make([]Question, len(questions))
	copy(ordered, questions)

	sort.SliceStable(ordered, func(firstIndex int, secondIndex int) bool {
		first := ordered[firstIndex]
		second := ordered[secondIndex]

		if first.Groupe != second.Groupe {
			return first.Groupe < second.Groupe
		}
		if first.SousCompte != second.SousCompte {
			return first.SousCompte < second.SousCompte
		}
		if numeroOrZero(first) != numeroOrZero(second) {
			return numeroOrZero(first) < numeroOrZero(second)
		}
		if first.Date != second.Date {
			return first.Date < second.Date
		}
		return first.Libelle < second.Libelle
	})

	return ordered
}

// DisplayFilter narrows a catalog to the questions a caller asked to see.
// Empty filter dimensions match every question.
type DisplayFilter struct {
	Groupes     []string
	SousComptes []string
	Search      string
}

// Matches reports whether the question passes every configured dimension.
func (filter DisplayFilter) Matches(question Question) bool {
	if !valueAllowed(question.Groupe, filter.Groupes) {
		return false
	}
	if !valueAllowed(question.SousCompte, filter.SousComptes) {
		return false
	}

	searchTerm := strings.TrimSpace(strings.ToLower(filter.Search))
	if len(searchTerm) == 0 {
		return true
	}

	searchableText := strings.ToLower(question.Libelle + displaySearchFieldJoinerConstant + question.Prompt)
	return strings.Contains(searchableText, searchTerm)
}

// Filtered returns the display-ordered questions matching the filter.
func (filter DisplayFilter) Filtered(questions []Question) []Question {
	var matching []Question
	for _, question := range questions {
		if filter.Matches(question) {
			matching = append(matching, question)
		}
	}
	return SortedForDisplay(matching)
}

// FormatMontant renders a numeric amount in the French accounting style used
// by the form, for example "1 234,50 €". Non-numeric values pass through
// verbatim and empty values stay empty.
func FormatMontant(rawAmount string) string {
	trimmedAmount := strings.TrimSpace(rawAmount)
	if len(trimmedAmount) == 0 {
		return ""
	}

	parsedAmount, parseError := strconv.ParseFloat(trimmedAmount, 64)
	if parseError != nil {
		return rawAmount
	}

	fixedAmount := strconv.FormatFloat(math.Abs(parsedAmount), 'f', 2, 64)
	integerDigits, fractionDigits, _ := strings.Cut(fixedAmount, ".")

	formatted := groupThousands(integerDigits) + montantDecimalSeparatorConstant + fractionDigits + montantCurrencySuffixConstant
	if parsedAmount < 0 {
		formatted = montantNegativeSignConstant + formatted
	}
	return formatted
}

func groupThousands(integerDigits string) string {
	var groupedBuilder strings.Builder
	for digitIndex, digit := range integerDigits {
		remaining := len(integerDigits) - digitIndex
		if digitIndex > 0 && remaining%montantThousandsGroupSize == 0 {
			groupedBuilder.WriteRune(montantThousandsSeparatorRune)
		}
		groupedBuilder.WriteRune(digit)
	}
	return groupedBuilder.String()
}

func numeroOrZero(question Question) int {
	if question.Numero == nil {
		return 0
	}
	return *question.Numero
}

func valueAllowed(value string, allowedValues []string) bool {
	if len(allowedValues) == 0 {
		return true
	}
	for _, allowedValue := range allowedValues {
		if value == allowedValue {
			return true
		}
	}
	return false
}
