// Package intl holds the locale-aware text normalization shared by the
// reference catalog and the member import validator.
package intl

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerTurkish = cases.Lower(language.Turkish)

var foldTable = map[rune]rune{
	'ğ': 'g',
	'ü': 'u',
	'ş': 's',
	'ı': 'i',
	'ö': 'o',
	'ç': 'c',
}

// FoldTurkish trims, lower-cases with Turkish casing rules (so that İ→i and
// I→ı) and strips Turkish diacritics. Two display names are considered the
// same reference when their folded forms are equal.
func FoldTurkish(s string) string {
	s = lowerTurkish.String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if folded, ok := foldTable[r]; ok {
			return folded
		}
		return r
	}, s)
}
