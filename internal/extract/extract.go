// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses PubMed efetch XML into flat records, applying
// the author affiliation heuristics.
package extract

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// PubMed efetch XML structures. Only the fields the records need are mapped.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Title   string   `xml:"ArticleTitle"`
	Journal journal  `xml:"Journal"`
	Authors []author `xml:"AuthorList>Author"`
}

type journal struct {
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate *pubDate `xml:"PubDate"`
}

// pubDate components are kept as strings: Month is frequently a name
// ("Jan") rather than a number, and absent components must stay empty.
type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type author struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

// Parse decodes a PubmedArticleSet document and returns one Record per
// article in document order. Missing sub-fields never fail an article;
// they default to empty strings or sentinels. A document that is not
// well-formed XML fails the whole batch.
func Parse(data []byte, cfg types.ExtractConfig) ([]types.Record, error) {
	var set articleSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing PubMed XML: %w", err)
	}

	keywords := cfg.CompanyKeywords
	if len(keywords) == 0 {
		keywords = DefaultCompanyKeywords
	}

	records := make([]types.Record, 0, len(set.Articles))
	for _, a := range set.Articles {
		records = append(records, buildRecord(a, keywords))
	}
	return records, nil
}

// buildRecord flattens one article into the fixed record schema.
func buildRecord(a pubmedArticle, keywords []string) types.Record {
	rec := types.Record{
		PubMedID:        a.Citation.PMID,
		Title:           a.Citation.Article.Title,
		PublicationDate: formatPubDate(a.Citation.Article.Journal.Issue.PubDate),
	}

	var authors, nonAcademic, affiliations, emails []string
	for _, au := range a.Citation.Article.Authors {
		name := fullName(au)
		authors = append(authors, name)

		if len(au.Affiliations) == 0 {
			continue
		}
		cls := ClassifyAffiliation(au.Affiliations[0], keywords)
		if cls.Email != "" {
			emails = append(emails, cls.Email)
		}
		if cls.NonAcademic {
			nonAcademic = append(nonAcademic, name)
			affiliations = append(affiliations, au.Affiliations[0])
		}
	}

	rec.Authors = strings.Join(authors, ", ")
	rec.NonAcademicAuthors = strings.Join(nonAcademic, ", ")
	rec.CompanyAffiliations = strings.Join(affiliations, "; ")

	// Representative contact: first email in author order. This is not
	// checked against the actual first author.
	rec.Email = types.EmailNotAvailable
	if len(emails) > 0 {
		rec.Email = emails[0]
	}
	return rec
}

// fullName builds "<fore> <last>", collapsing to the bare last name when
// the forename is absent.
func fullName(au author) string {
	return strings.TrimSpace(au.ForeName + " " + au.LastName)
}

// formatPubDate renders "YEAR-MONTH-DAY" with empty components preserved
// (e.g. "2020--"). No year at all means the date is unknown.
func formatPubDate(d *pubDate) string {
	if d == nil || d.Year == "" {
		return types.DateUnknown
	}
	return d.Year + "-" + d.Month + "-" + d.Day
}
