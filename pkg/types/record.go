// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline:
// the flat output record written to reports and the configuration structs
// consumed by the PubMed client, the logger, and the run archive.
package types

// NotAvailable is the sentinel written for fields the source document lacks.
const NotAvailable = "N/A"

// MaxSearchResults caps the number of identifiers a single search returns.
const MaxSearchResults = 10

// Column names of an output record, in canonical report order.
const (
	FieldPubmedID     = "PubmedID"
	FieldTitle        = "Title"
	FieldPublished    = "Publication Date"
	FieldAuthors      = "Non-academic Author(s)"
	FieldAffiliations = "Company Affiliation(s)"
	FieldEmail        = "Corresponding Author Email"
)

// Fields lists the record columns in the order reports write them. Report
// headers always come from this list, never from a record instance, so an
// empty report still has a well-formed header.
var Fields = []string{
	FieldPubmedID,
	FieldTitle,
	FieldPublished,
	FieldAuthors,
	FieldAffiliations,
	FieldEmail,
}

// Record is one row of a report: the metadata of a single PubMed article
// plus the authors classified as company-affiliated.
type Record struct {
	// PubmedID is the PubMed identifier the record was fetched for.
	PubmedID string `json:"PubmedID" yaml:"pubmed_id"`

	// Title is the article title, or NotAvailable.
	Title string `json:"Title" yaml:"title"`

	// PublicationDate is the journal issue publication year, or NotAvailable.
	PublicationDate string `json:"Publication Date" yaml:"publication_date"`

	// NonAcademicAuthors is the ", "-joined list of company-affiliated author
	// names. Empty when no author qualifies.
	NonAcademicAuthors string `json:"Non-academic Author(s)" yaml:"non_academic_authors"`

	// CompanyAffiliations is the ", "-joined list of affiliations matching
	// NonAcademicAuthors position by position. Empty when no author qualifies.
	CompanyAffiliations string `json:"Company Affiliation(s)" yaml:"company_affiliations"`

	// CorrespondingEmail is the last affiliation email seen, or NotAvailable.
	CorrespondingEmail string `json:"Corresponding Author Email" yaml:"corresponding_email"`
}

// Values returns the record's fields in the order of Fields.
func (r Record) Values() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.CorrespondingEmail,
	}
}

// RecordFromValues is the inverse of Values. Missing trailing values are
// left empty.
func RecordFromValues(values []string) Record {
	get := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	return Record{
		PubmedID:            get(0),
		Title:               get(1),
		PublicationDate:     get(2),
		NonAcademicAuthors:  get(3),
		CompanyAffiliations: get(4),
		CorrespondingEmail:  get(5),
	}
}
