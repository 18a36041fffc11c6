// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the search → fetch → extract → write sequence
// for one query.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pubmed-screen/internal/eutils"
	"github.com/pdiddy/pubmed-screen/internal/extract"
	"github.com/pdiddy/pubmed-screen/internal/report"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// Run executes one screening run: resolve the query to PMIDs, fetch
// their bibliographic XML, extract records, and write the report.
// Progress and anticipated failures go to out.
//
// Network failures and empty result sets are anticipated outcomes: they
// are reported on out and Run returns nil. A malformed fetch response or
// a report write failure returns an error.
func Run(ctx context.Context, client *eutils.Client, cfg types.PipelineConfig, out io.Writer) error {
	fmt.Fprintf(out, "Fetching papers for query: %s\n", cfg.Query)

	ids, err := client.Search(ctx, cfg.Query, cfg.Search)
	if err != nil {
		fmt.Fprintf(out, "Error fetching PubMed data: %v\n", err)
		return nil
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "No papers found for the query.")
		return nil
	}
	fmt.Fprintf(out, "Found %d papers.\n", len(ids))

	xmlData, err := client.Fetch(ctx, ids, cfg.Search)
	if err != nil {
		fmt.Fprintf(out, "Error fetching paper details: %v\n", err)
		return nil
	}

	records, err := extract.Parse(xmlData, cfg.Extract)
	if err != nil {
		return err
	}

	opts := report.Options{
		Format:  cfg.Output.Format,
		Columns: cfg.Output.Columns,
	}
	return report.Write(records, cfg.Output.File, opts, out)
}
