// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// DefaultCompanyKeywords are the affiliation substrings that mark an
// author as non-academic when no override is configured.
var DefaultCompanyKeywords = []string{"company", "pharma", "biotech"}

// AffiliationClass is the outcome of classifying one affiliation string.
type AffiliationClass struct {
	// NonAcademic is true when the text matched a company keyword.
	NonAcademic bool

	// Email is the address extracted from the text, or empty.
	Email string
}

// ClassifyAffiliation inspects an author's raw affiliation text. If the
// text contains an "@", its last whitespace-delimited token is taken as
// an email address. If it contains any keyword case-insensitively, the
// author is classified as non-academic. Pure string heuristic, no I/O.
func ClassifyAffiliation(text string, keywords []string) AffiliationClass {
	var cls AffiliationClass
	if text == "" {
		return cls
	}

	if strings.Contains(text, "@") {
		fields := strings.Fields(text)
		cls.Email = fields[len(fields)-1]
	}

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			cls.NonAcademic = true
			break
		}
	}
	return cls
}
