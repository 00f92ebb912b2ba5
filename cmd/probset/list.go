package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/probset"
	"github.com/fwojciec/probset/fs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if deps.Datasets == nil {
		return errNoDatabase
	}

	summaries, err := deps.Datasets.FindDatasets(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", probset.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No datasets found. Run 'probset convert --db <path>' to store some.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %d records  %s\n", s.Name, s.RecordCount, s.WrittenAt.Format(time.RFC3339))
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if deps.Datasets == nil {
		return errNoDatabase
	}

	ds, err := deps.Datasets.FindDataset(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", probset.ErrorMessage(err))
		return err
	}

	data, err := fs.EncodeRecords(ds.Records)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}

var errNoDatabase = probset.Errorf(probset.EINVALID, "no database configured. Set --db or PROBSET_DB")
