package member

import (
	"regexp"
	"strings"

	"github.com/sendikahq/sendika/pkg/intl"
)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{11}$`)
	phonePattern      = regexp.MustCompile(`^0[0-9]{10}$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	birthDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonDigits         = regexp.MustCompile(`\D`)
)

func IsValidNationalID(s string) bool {
	return nationalIDPattern.MatchString(s)
}

func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidBirthDate checks the YYYY-MM-DD shape only; calendar validity is
// deliberately not enforced.
func IsValidBirthDate(s string) bool {
	return birthDatePattern.MatchString(s)
}

// NormalizePhone brings the common ways a Turkish mobile number is written
// down to the canonical 0XXXXXXXXXX form. Unrecognized shapes are returned
// trimmed so the format check can reject them with the original value.
func NormalizePhone(s string) string {
	trimmed := strings.TrimSpace(s)
	digits := nonDigits.ReplaceAllString(trimmed, "")
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		return "0" + digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return digits
	case len(digits) == 10:
		return "0" + digits
	default:
		return trimmed
	}
}

// Token tables are keyed by folded form; accented spellings like "kadın" or
// "üniversite" fold onto the keys below.
var genderTokens = map[string]Gender{
	"male":   GenderMale,
	"erkek":  GenderMale,
	"e":      GenderMale,
	"female": GenderFemale,
	"kadin":  GenderFemale,
	"k":      GenderFemale,
	"other":  GenderOther,
	"diger":  GenderOther,
	"d":      GenderOther,
}

var educationTokens = map[string]Education{
	"primary":     EducationPrimary,
	"ilkokul":     EducationPrimary,
	"ilk":         EducationPrimary,
	"high_school": EducationHighSchool,
	"lise":        EducationHighSchool,
	"l":           EducationHighSchool,
	"college":     EducationCollege,
	"universite":  EducationCollege,
	"yuksek":      EducationCollege,
}

// ParseGender accepts Turkish, English and single-letter abbreviations,
// case-insensitively. Tokens are matched on their folded form, so "KADIN",
// "Kadın" and "kadin" are all the same value.
func ParseGender(s string) (Gender, bool) {
	g, ok := genderTokens[intl.FoldTurkish(s)]
	return g, ok
}

func ParseEducation(s string) (Education, bool) {
	e, ok := educationTokens[intl.FoldTurkish(s)]
	return e, ok
}
