// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-screen pipeline.
package types

// Sentinel values used when a record field cannot be populated.
const (
	// DateUnknown marks an article whose PubDate carries no year.
	DateUnknown = "Unknown"

	// EmailNotAvailable marks an article with no extractable contact email.
	EmailNotAvailable = "Not Available"
)

// RecordColumns is the fixed column list for tabular output, in output
// order. Every Record populates every column; absent data is an empty
// string or a sentinel, never a missing field.
var RecordColumns = []string{
	"PubMedID",
	"Title",
	"Publication Date",
	"Authors",
	"Non-academic Authors",
	"Company Affiliations",
	"Email",
}

// Record is the flat, fixed-schema output unit representing one article.
// List-valued fields are pre-joined strings: Authors and
// NonAcademicAuthors by ", ", CompanyAffiliations by "; ".
type Record struct {
	// PubMedID is the article's PMID as returned by PubMed.
	PubMedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title. May legitimately be empty.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "YEAR-MONTH-DAY" with absent components left
	// empty (e.g. "2020--"), or DateUnknown when no year was present.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists every author full name in document order.
	Authors string `json:"authors" yaml:"authors"`

	// NonAcademicAuthors lists the authors whose affiliation matched the
	// company keyword heuristic.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the matching affiliation strings verbatim.
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`

	// Email is the representative contact address, or EmailNotAvailable.
	Email string `json:"email" yaml:"email"`
}

// Field returns the value for a named column, or the empty string for an
// unknown column name.
func (r Record) Field(column string) string {
	switch column {
	case "PubMedID":
		return r.PubMedID
	case "Title":
		return r.Title
	case "Publication Date":
		return r.PublicationDate
	case "Authors":
		return r.Authors
	case "Non-academic Authors":
		return r.NonAcademicAuthors
	case "Company Affiliations":
		return r.CompanyAffiliations
	case "Email":
		return r.Email
	}
	return ""
}

// Row returns the record's values in RecordColumns order.
func (r Record) Row() []string {
	row := make([]string, len(RecordColumns))
	for i, c := range RecordColumns {
		row[i] = r.Field(c)
	}
	return row
}
