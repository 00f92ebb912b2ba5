package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/probset"
	"github.com/fwojciec/probset/convert"
	"github.com/fwojciec/probset/fs"
	"github.com/fwojciec/probset/goquery"
	probslog "github.com/fwojciec/probset/slog"
	"github.com/fwojciec/probset/xtext"
	"github.com/fwojciec/probset/yaml"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	folders, err := c.folderTable()
	if err != nil {
		return err
	}

	if c.PrintConfig {
		return yaml.WriteFolders(deps.Stdout, folders)
	}

	// The JSON file is written last so a failed mirror write leaves no
	// output file for the folder.
	var writer probset.DatasetWriter = fs.NewDatasetWriter(c.Output)
	if deps.Datasets != nil {
		writer = convert.MultiWriter(deps.Datasets, writer)
	}

	converter := &convert.Converter{
		Pages:     probslog.NewLoggingPageSource(fs.NewPageSource(c.Input), deps.Logger),
		Extractor: probslog.NewLoggingExtractor(goquery.NewExtractor(xtext.NewNormalizer()), deps.Logger),
		Datasets:  probslog.NewLoggingDatasetWriter(writer, deps.Logger),
		KeepGoing: c.KeepGoing,
	}

	result, err := converter.Run(deps.Ctx, folders)
	for _, s := range result.Written {
		fmt.Fprintf(deps.Stdout, "%s: %d records from %d pages (%d excluded, %d duplicates)\n",
			s.Folder, s.Records, s.Pages, s.Excluded, s.Duplicates)
	}
	for _, name := range result.Failed {
		fmt.Fprintf(deps.Stderr, "%s: not written\n", name)
	}
	return err
}

// folderTable returns the configured folders narrowed to the selected ones.
func (c *ConvertCmd) folderTable() ([]probset.Folder, error) {
	folders := probset.DefaultFolders()
	if c.Config != "" {
		f, err := os.Open(c.Config)
		if err != nil {
			return nil, probset.Errorf(probset.EINVALID, "open folder table: %s", err)
		}
		defer f.Close()

		if folders, err = yaml.LoadFolders(f); err != nil {
			return nil, err
		}
	}
	return probset.SelectFolders(folders, c.Folders)
}
