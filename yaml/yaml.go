// Package yaml reads and writes folder tables in YAML.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/probset"
	"gopkg.in/yaml.v3"
)

type fileTable struct {
	Folders []fileFolder `yaml:"folders"`
}

type fileFolder struct {
	Name      string                      `yaml:"name"`
	Behavior  probset.Behavior            `yaml:"behavior"`
	Overrides map[string]probset.Behavior `yaml:"overrides,omitempty"`
	Exclude   []fileExclusion             `yaml:"exclude,omitempty"`
}

type fileExclusion struct {
	Field    string   `yaml:"field"`
	Contains []string `yaml:"contains,flow"`
}

// LoadFolders decodes a folder table. Unknown keys are rejected and every
// folder is validated. Returns EINVALID on any problem with the table.
func LoadFolders(r io.Reader) ([]probset.Folder, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var table fileTable
	if err := dec.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, probset.Errorf(probset.EINVALID, "folder table is empty")
		}
		return nil, probset.Errorf(probset.EINVALID, "parse folder table: %s", err)
	}
	if len(table.Folders) == 0 {
		return nil, probset.Errorf(probset.EINVALID, "folder table lists no folders")
	}

	folders := make([]probset.Folder, 0, len(table.Folders))
	seen := make(map[string]bool, len(table.Folders))
	for _, ff := range table.Folders {
		f := probset.Folder{
			Name:      ff.Name,
			Behavior:  ff.Behavior,
			Overrides: ff.Overrides,
		}
		for _, fe := range ff.Exclude {
			f.Exclusions = append(f.Exclusions, probset.Exclusion{Field: fe.Field, Contains: fe.Contains})
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, probset.Errorf(probset.EINVALID, "duplicate folder %q", f.Name)
		}
		seen[f.Name] = true
		folders = append(folders, f)
	}
	return folders, nil
}

// WriteFolders encodes folders in the schema read by LoadFolders.
func WriteFolders(w io.Writer, folders []probset.Folder) error {
	table := fileTable{Folders: make([]fileFolder, 0, len(folders))}
	for _, f := range folders {
		ff := fileFolder{
			Name:      f.Name,
			Behavior:  f.Behavior,
			Overrides: f.Overrides,
		}
		for _, e := range f.Exclusions {
			ff.Exclude = append(ff.Exclude, fileExclusion{Field: e.Field, Contains: e.Contains})
		}
		table.Folders = append(table.Folders, ff)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return fmt.Errorf("failed to encode folder table: %w", err)
	}
	return enc.Close()
}
