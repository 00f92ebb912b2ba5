// Package convert provides the folder conversion pipeline.
// It coordinates page enumeration, extraction, filtering, deduplication
// and storage of datasets.
package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/probset"
)

// Converter turns category folders of HTML pages into datasets.
// Pages are processed one at a time in the order returned by Pages.
type Converter struct {
	Pages     probset.PageSource
	Extractor probset.Extractor
	Datasets  probset.DatasetWriter

	// KeepGoing continues with the remaining folders when a folder fails.
	// Nothing is written for a failed folder either way.
	KeepGoing bool
}

// Summary describes the conversion of one folder.
type Summary struct {
	Folder     string
	Pages      int
	Extracted  int
	Excluded   int
	Duplicates int
	Records    int
}

// Result holds the outcome of a Run.
type Result struct {
	Written []Summary
	Failed  []string
}

// Run converts every folder and writes its dataset.
// Unless KeepGoing is set, the first error stops the run. With KeepGoing,
// failed folders are recorded in the result and their errors are joined.
func (c *Converter) Run(ctx context.Context, folders []probset.Folder) (*Result, error) {
	result := &Result{}
	var errs []error

	for i := range folders {
		folder := &folders[i]

		summary, err := c.convertAndWrite(ctx, folder)
		if err != nil {
			if !c.KeepGoing || ctx.Err() != nil {
				return result, err
			}
			result.Failed = append(result.Failed, folder.Name)
			errs = append(errs, err)
			continue
		}
		result.Written = append(result.Written, *summary)
	}

	return result, errors.Join(errs...)
}

func (c *Converter) convertAndWrite(ctx context.Context, folder *probset.Folder) (*Summary, error) {
	ds, summary, err := c.ConvertFolder(ctx, folder)
	if err != nil {
		return nil, err
	}
	if err := c.Datasets.WriteDataset(ctx, ds); err != nil {
		return nil, fmt.Errorf("%s: write dataset: %w", folder.Name, err)
	}
	return summary, nil
}

// ConvertFolder extracts the records of every page in the folder, drops
// excluded records, tags the rest with their page name and removes
// duplicates. Any page error aborts the folder; no partial dataset is
// returned.
func (c *Converter) ConvertFolder(ctx context.Context, folder *probset.Folder) (*probset.Dataset, *Summary, error) {
	if err := folder.Validate(); err != nil {
		return nil, nil, err
	}

	pages, err := c.Pages.ListPages(ctx, folder.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", folder.Name, err)
	}

	summary := &Summary{Folder: folder.Name, Pages: len(pages)}
	var records []probset.Record

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		extracted, err := c.extractPage(ctx, folder, page)
		if err != nil {
			return nil, nil, fmt.Errorf("%s/%s: %w", folder.Name, page, err)
		}

		kept := folder.Postprocess(extracted)
		summary.Extracted += len(extracted)
		summary.Excluded += len(extracted) - len(kept)

		for _, r := range kept {
			records = append(records, r.With(probset.FieldSource, page))
		}
	}

	deduped := probset.Dedupe(records)
	summary.Duplicates = len(records) - len(deduped)
	summary.Records = len(deduped)

	return &probset.Dataset{Name: folder.Name, Records: deduped}, summary, nil
}

func (c *Converter) extractPage(ctx context.Context, folder *probset.Folder, page string) ([]probset.Record, error) {
	html, err := c.Pages.ReadPage(ctx, folder.Name, page)
	if err != nil {
		return nil, err
	}
	return c.Extractor.Extract(folder.BehaviorFor(page), html)
}
