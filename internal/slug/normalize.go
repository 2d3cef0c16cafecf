package slug

import (
	"strings"
	"unicode"
)

const (
	emptySlugFallbackConstant   = "x"
	slugSeparatorStringConstant = "_"
)

const slugSeparatorRune = '_'

// Normalize converts a free-form identifier into a slug safe for file names and
// CSV cells. It lower-cases the input, removes characters outside the Unicode
// word, whitespace, and hyphen classes, collapses runs of whitespace and
// hyphens into a single underscore, and trims leading and trailing
// underscores. An input that normalizes to nothing yields a fixed fallback so
// derived paths are never empty.
func Normalize(rawIdentifier string) string {
	lowered := strings.ToLower(strings.TrimSpace(rawIdentifier))

	var slugBuilder strings.Builder
	separatorPending := false
	for _, character := range lowered {
		switch {
		case isWordCharacter(character):
			if separatorPending && slugBuilder.Len() > 0 {
				slugBuilder.WriteRune(slugSeparatorRune)
			}
			separatorPending = false
			slugBuilder.WriteRune(character)
		case isSeparatorCharacter(character):
			separatorPending = true
		}
	}

	normalized := strings.Trim(slugBuilder.String(), slugSeparatorStringConstant)
	if len(normalized) == 0 {
		return emptySlugFallbackConstant
	}
	return normalized
}

func isWordCharacter(character rune) bool {
	return character == slugSeparatorRune || unicode.IsLetter(character) || unicode.IsDigit(character)
}

func isSeparatorCharacter(character rune) bool {
	return character == '-' || unicode.IsSpace(character)
}
