package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nameScanLines = 4
	nameMaxWords  = 4
	previewRunes  = 500
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// Loose on purpose: any run of ten or more digits, spaces and hyphens
	// qualifies, so street numbers or IDs may be reported as phones.
	rePhone = regexp.MustCompile(`\+?\d[\d -]{8,}\d`)
)

// FindEmail returns the first address-shaped substring.
func FindEmail(text string) string {
	return reEmail.FindString(text)
}

// FindPhone returns the first phone-shaped substring.
func FindPhone(text string) string {
	return rePhone.FindString(text)
}

// HeadingName looks for a short all-caps line among the first lines of the
// résumé and returns it title-cased.
func HeadingName(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !isUpper(line) || len(strings.Fields(line)) > nameMaxWords {
			continue
		}
		return cases.Title(language.English).String(line), true
	}
	return "", false
}

// Preview returns the first 500 characters of text.
func Preview(text string) string {
	n := 0
	for i := range text {
		if n == previewRunes {
			return text[:i]
		}
		n++
	}
	return text
}

// isUpper reports whether s has at least one cased letter and no lower-case
// ones. Digits and punctuation are ignored.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}
