// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/get-papers-list/internal/affiliation"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// listSep joins the author and affiliation lists of a record.
const listSep = ", "

// BuildRecord shapes a parsed document into an output record for id.
// Absent fields become types.NotAvailable; it never fails.
//
// Authors whose affiliation classifies as a company contribute their name and
// that affiliation in lockstep, so both joined lists always have the same
// number of entries. An author with no resolvable name contributes
// types.NotAvailable in the name list. The corresponding email is the last
// non-empty affiliation email across all authors, company or not.
func BuildRecord(doc *Document, id string) types.Record {
	rec := types.Record{
		PubmedID:           id,
		Title:              types.NotAvailable,
		PublicationDate:    types.NotAvailable,
		CorrespondingEmail: types.NotAvailable,
	}
	if doc == nil {
		return rec
	}

	if t := firstTitle(doc); t != "" {
		rec.Title = t
	}
	if y := firstYear(doc); y != "" {
		rec.PublicationDate = y
	}

	names, affiliations, email := scanAuthors(doc.Authors())
	if email != "" {
		rec.CorrespondingEmail = email
	}

	rec.NonAcademicAuthors = strings.Join(names, listSep)
	rec.CompanyAffiliations = strings.Join(affiliations, listSep)
	return rec
}

// scanAuthors walks authors in order and returns the lockstep name and
// affiliation lists of company-affiliated authors, plus the last non-empty
// affiliation email.
func scanAuthors(authors []Author) (names, affiliations []string, email string) {
	for _, author := range authors {
		aff, ok := author.Affiliation()
		if !ok {
			continue
		}
		if affiliation.IsCompany(aff) {
			name := author.Name()
			if name == "" {
				name = types.NotAvailable
			}
			names = append(names, name)
			affiliations = append(affiliations, aff)
		}
		if e := author.Email(); e != "" {
			email = e
		}
	}
	return names, affiliations, email
}

// firstTitle and firstYear look at journal articles before book articles.
func firstTitle(doc *Document) string {
	for _, art := range doc.Articles {
		if t := strings.TrimSpace(art.Citation.Article.Title); t != "" {
			return t
		}
	}
	for _, book := range doc.BookArticles {
		if t := strings.TrimSpace(book.Document.Title); t != "" {
			return t
		}
	}
	return ""
}

func firstYear(doc *Document) string {
	for _, art := range doc.Articles {
		if y := strings.TrimSpace(art.Citation.Article.PubDate.Year); y != "" {
			return y
		}
	}
	for _, book := range doc.BookArticles {
		if y := strings.TrimSpace(book.Document.Book.PubDate.Year); y != "" {
			return y
		}
	}
	return ""
}
