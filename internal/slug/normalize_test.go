package slug_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/qledger/internal/slug"
)

func TestNormalizeBehaviors(testInstance *testing.T) {
	testCases := []struct {
		name          string
		rawIdentifier string
		expectedSlug  string
	}{
		{
			name:          "company_with_ampersand",
			rawIdentifier: "Dupont & Fils",
			expectedSlug:  "dupont_fils",
		},
		{
			name:          "surrounding_whitespace",
			rawIdentifier: "  Client SARL  ",
			expectedSlug:  "client_sarl",
		},
		{
			name:          "hyphen_runs_collapse",
			rawIdentifier: "Nord -- Sud",
			expectedSlug:  "nord_sud",
		},
		{
			name:          "punctuation_removed",
			rawIdentifier: "S.A.R.L. \"Les Pins\"",
			expectedSlug:  "sarl_les_pins",
		},
		{
			name:          "existing_underscores_preserved",
			rawIdentifier: "ACME__Corp",
			expectedSlug:  "acme__corp",
		},
		{
			name:          "leading_trailing_separators_trimmed",
			rawIdentifier: "-- client --",
			expectedSlug:  "client",
		},
		{
			name:          "empty_input_falls_back",
			rawIdentifier: "",
			expectedSlug:  "x",
		},
		{
			name:          "only_punctuation_falls_back",
			rawIdentifier: "!!! ???",
			expectedSlug:  "x",
		},
		{
			name:          "digits_kept",
			rawIdentifier: "Client 2024-12",
			expectedSlug:  "client_2024_12",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			require.Equal(subtest, testCase.expectedSlug, slug.Normalize(testCase.rawIdentifier))
		})
	}
}

func TestNormalizeIsIdempotent(testInstance *testing.T) {
	rawIdentifiers := []string{
		"Dupont & Fils",
		"  Client SARL  ",
		"-- client --",
		"",
		"déjà vu & co",
		"line\nbreak\tclient",
	}

	for _, rawIdentifier := range rawIdentifiers {
		normalized := slug.Normalize(rawIdentifier)
		require.Equal(testInstance, normalized, slug.Normalize(normalized))
	}
}

func TestNormalizeOutputCharacterSet(testInstance *testing.T) {
	rawIdentifiers := []string{
		"Dupont & Fils",
		"Client 2024-12",
		"S.A.R.L. \"Les Pins\"",
		"tabs\tand\nnewlines",
	}

	for _, rawIdentifier := range rawIdentifiers {
		normalized := slug.Normalize(rawIdentifier)
		for _, character := range normalized {
			isLowerASCII := character >= 'a' && character <= 'z'
			isDigit := character >= '0' && character <= '9'
			require.True(testInstance, isLowerASCII || isDigit || character == '_', "unexpected character %q in slug %q", character, normalized)
		}
	}
}
