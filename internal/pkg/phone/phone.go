package phone

import "strings"

// Result is the outcome of validating a raw phone string.
type Result struct {
	IsValid        bool
	CountryCode    string
	NationalNumber string
	Formatted      string
}

type countrySpec struct {
	dialCode       string // without the leading "+"
	nationalLength int
}

// Latin American dial codes with their fixed national-number lengths.
// The table is scanned for the single longest matching prefix: several
// codes share a leading digit ("5" covers +51..+58 and the 3-digit +59x
// and +50x families), so a first-match scan would misclassify them.
var countries = []countrySpec{
	{"51", 9},   // Peru
	{"52", 10},  // Mexico
	{"53", 8},   // Cuba
	{"54", 10},  // Argentina
	{"549", 10}, // Argentina (mobile, 9-prefixed)
	{"55", 11},  // Brazil
	{"56", 9},   // Chile
	{"57", 10},  // Colombia
	{"58", 10},  // Venezuela
	{"502", 8},  // Guatemala
	{"503", 8},  // El Salvador
	{"504", 8},  // Honduras
	{"505", 8},  // Nicaragua
	{"506", 8},  // Costa Rica
	{"507", 8},  // Panama
	{"591", 8},  // Bolivia
	{"593", 9},  // Ecuador
	{"595", 9},  // Paraguay
	{"598", 8},  // Uruguay
}

// Validate normalizes raw and checks it against the LATAM dial-code table.
// On failure the returned Result carries the sanitized input in Formatted
// with empty country code and national number.
func Validate(raw string) Result {
	sanitized := sanitize(raw)

	if !strings.HasPrefix(sanitized, "+") {
		return Result{Formatted: sanitized}
	}

	digits := sanitized[1:]
	spec, ok := longestPrefixMatch(digits)
	if !ok {
		return Result{Formatted: sanitized}
	}

	national := digits[len(spec.dialCode):]
	if len(national) != spec.nationalLength || !isDigits(national) {
		return Result{Formatted: sanitized}
	}

	return Result{
		IsValid:        true,
		CountryCode:    spec.dialCode,
		NationalNumber: national,
		Formatted:      "+" + spec.dialCode + " " + national,
	}
}

// sanitize strips spaces, hyphens, parentheses and dots. A leading "+"
// survives; any other character (including a misplaced "+") is kept so
// that validation rejects it downstream.
func sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func longestPrefixMatch(digits string) (countrySpec, bool) {
	var best countrySpec
	found := false
	for _, c := range countries {
		if strings.HasPrefix(digits, c.dialCode) {
			if !found || len(c.dialCode) > len(best.dialCode) {
				best = c
				found = true
			}
		}
	}
	return best, found
}
