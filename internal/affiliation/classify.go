// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation decides whether an author's free-text affiliation
// belongs to a company or to an academic institution.
//
// Matching is a case-sensitive substring test with no normalization, so a
// keyword inside an unrelated word still counts ("College" in "Collegeville").
package affiliation

import "strings"

// Kind is the outcome of classifying one affiliation.
type Kind int

const (
	Academic Kind = iota
	Company
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == Company {
		return "company"
	}
	return "academic"
}

// CompanyKeywords mark an affiliation as commercial.
var CompanyKeywords = []string{"Inc", "Ltd", "Biotech", "Pharma", "Laboratories"}

// AcademicKeywords veto a company match.
var AcademicKeywords = []string{"University", "College", "Institute", "Hospital"}

// Classify returns Company when text contains at least one company keyword
// and no academic keyword, and Academic otherwise.
func Classify(text string) Kind {
	if containsAny(text, CompanyKeywords) && !containsAny(text, AcademicKeywords) {
		return Company
	}
	return Academic
}

// IsCompany reports whether Classify(text) is Company.
func IsCompany(text string) bool {
	return Classify(text) == Company
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
