// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

const sampleEfetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2024//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_240101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>39111111</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2020</Year><Month>Mar</Month><Day>15</Day></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Targeted therapy outcomes in solid tumors</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Doe</LastName>
            <ForeName>Jane</ForeName>
            <AffiliationInfo>
              <Affiliation>Jane Doe, Acme Biotech Inc, jane@acme.com</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author>
            <LastName>Smith</LastName>
            <ForeName>John</ForeName>
            <AffiliationInfo>
              <Affiliation>Department of Oncology, State University</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>38222222</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2020</Year></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>A second article</ArticleTitle>
        <AuthorList>
          <Author>
            <LastName>Nguyen</LastName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>37333333</PMID>
      <Article>
        <ArticleTitle>An article with no date</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestParseRecordPerArticle(t *testing.T) {
	records, err := Parse([]byte(sampleEfetchXML), types.ExtractConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	for i, rec := range records {
		if got := len(rec.Row()); got != len(types.RecordColumns) {
			t.Errorf("records[%d]: len(Row()) = %d, want %d", i, got, len(types.RecordColumns))
		}
	}
}

func TestParseFirstArticle(t *testing.T) {
	records, err := Parse([]byte(sampleEfetchXML), types.ExtractConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	r := records[0]
	if r.PubMedID != "39111111" {
		t.Errorf("PubMedID = %q", r.PubMedID)
	}
	if r.Title != "Targeted therapy outcomes in solid tumors" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.PublicationDate != "2020-Mar-15" {
		t.Errorf("PublicationDate = %q, want %q", r.PublicationDate, "2020-Mar-15")
	}
	if r.Authors != "Jane Doe, John Smith" {
		t.Errorf("Authors = %q", r.Authors)
	}
	if r.NonAcademicAuthors != "Jane Doe" {
		t.Errorf("NonAcademicAuthors = %q, want %q", r.NonAcademicAuthors, "Jane Doe")
	}
	if r.CompanyAffiliations != "Jane Doe, Acme Biotech Inc, jane@acme.com" {
		t.Errorf("CompanyAffiliations = %q, affiliation not recorded verbatim", r.CompanyAffiliations)
	}
	if r.Email != "jane@acme.com" {
		t.Errorf("Email = %q, want %q", r.Email, "jane@acme.com")
	}
}

func TestParseDateDefaults(t *testing.T) {
	records, err := Parse([]byte(sampleEfetchXML), types.ExtractConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Year only: month and day stay empty.
	if records[1].PublicationDate != "2020--" {
		t.Errorf("PublicationDate = %q, want %q", records[1].PublicationDate, "2020--")
	}
	// No PubDate at all.
	if records[2].PublicationDate != types.DateUnknown {
		t.Errorf("PublicationDate = %q, want %q", records[2].PublicationDate, types.DateUnknown)
	}
}

func TestParseAuthorDefaults(t *testing.T) {
	records, err := Parse([]byte(sampleEfetchXML), types.ExtractConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Missing forename collapses to the bare last name.
	if records[1].Authors != "Nguyen" {
		t.Errorf("Authors = %q, want %q", records[1].Authors, "Nguyen")
	}
	if records[1].Email != types.EmailNotAvailable {
		t.Errorf("Email = %q, want %q", records[1].Email, types.EmailNotAvailable)
	}
	if records[1].NonAcademicAuthors != "" || records[1].CompanyAffiliations != "" {
		t.Errorf("article without industry authors should leave both fields empty")
	}

	// No authors at all.
	if records[2].Authors != "" {
		t.Errorf("Authors = %q, want empty", records[2].Authors)
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, err := Parse([]byte(`<PubmedArticleSet><PubmedArticle>`), types.ExtractConfig{})
	if err == nil || !strings.Contains(err.Error(), "parsing PubMed XML") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestParseEmailFirstByAuthorOrder(t *testing.T) {
	const doc = `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>1</PMID>
      <Article>
        <ArticleTitle>t</ArticleTitle>
        <AuthorList>
          <Author><LastName>A</LastName>
            <AffiliationInfo><Affiliation>State University</Affiliation></AffiliationInfo>
          </Author>
          <Author><LastName>B</LastName>
            <AffiliationInfo><Affiliation>Contact b@corp.example</Affiliation></AffiliationInfo>
          </Author>
          <Author><LastName>C</LastName>
            <AffiliationInfo><Affiliation>Contact c@corp.example</Affiliation></AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	records, err := Parse([]byte(doc), types.ExtractConfig{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// First email by author order, regardless of whether that author is
	// the first author.
	if records[0].Email != "b@corp.example" {
		t.Errorf("Email = %q, want %q", records[0].Email, "b@corp.example")
	}
}

func TestClassifyAffiliation(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantNonAcademic bool
		wantEmail       string
	}{
		{"biotech with email", "Jane Doe, Acme Biotech Inc, jane@acme.com", true, "jane@acme.com"},
		{"pharma uppercase", "GLOBAL PHARMA LTD, Basel", true, ""},
		{"company keyword", "Research Division, Widget Company", true, ""},
		{"academic", "Department of Biology, State University", false, ""},
		{"academic with email", "State University, contact: prof@uni.edu", false, "prof@uni.edu"},
		{"keyword inside word", "Biotechnology Center, State University", true, ""},
		{"empty", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := ClassifyAffiliation(tt.text, DefaultCompanyKeywords)
			if cls.NonAcademic != tt.wantNonAcademic {
				t.Errorf("NonAcademic = %v, want %v", cls.NonAcademic, tt.wantNonAcademic)
			}
			if cls.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", cls.Email, tt.wantEmail)
			}
		})
	}
}

func TestClassifyAffiliationCustomKeywords(t *testing.T) {
	cls := ClassifyAffiliation("Acme Therapeutics GmbH", []string{"therapeutics"})
	if !cls.NonAcademic {
		t.Error("custom keyword should match")
	}
	cls = ClassifyAffiliation("Acme Biotech Inc", []string{"therapeutics"})
	if cls.NonAcademic {
		t.Error("default keywords should not apply when overridden")
	}
}
