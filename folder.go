package probset

import (
	"slices"
	"strings"
)

// Folder describes how the pages of one category folder are converted.
type Folder struct {
	// Name is both the input directory name and the output dataset name.
	Name string

	// Behavior is applied to every page without an override.
	Behavior Behavior

	// Overrides maps page file names to the behavior used for them.
	Overrides map[string]Behavior

	// Exclusions drop extracted records before they are tagged with
	// their source.
	Exclusions []Exclusion
}

// Exclusion drops records whose Field value contains any of Contains.
type Exclusion struct {
	Field    string
	Contains []string
}

// Validate returns an error if the folder contains invalid fields.
func (f *Folder) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "folder name required")
	}
	if strings.ContainsAny(f.Name, `/\`) {
		return Errorf(EINVALID, "folder name %q must not contain path separators", f.Name)
	}
	if err := f.Behavior.Validate(); err != nil {
		return Errorf(EINVALID, "folder %q: %s", f.Name, ErrorMessage(err))
	}
	for page, b := range f.Overrides {
		if page == "" {
			return Errorf(EINVALID, "folder %q: override page name required", f.Name)
		}
		if err := b.Validate(); err != nil {
			return Errorf(EINVALID, "folder %q: override %q: %s", f.Name, page, ErrorMessage(err))
		}
	}
	for _, e := range f.Exclusions {
		if e.Field == "" {
			return Errorf(EINVALID, "folder %q: exclusion field required", f.Name)
		}
		if len(e.Contains) == 0 || slices.Contains(e.Contains, "") {
			return Errorf(EINVALID, "folder %q: exclusion on %q requires non-empty substrings", f.Name, e.Field)
		}
	}
	return nil
}

// BehaviorFor returns the behavior that applies to the named page.
func (f *Folder) BehaviorFor(page string) Behavior {
	if b, ok := f.Overrides[page]; ok {
		return b
	}
	return f.Behavior
}

// Postprocess returns the records not matched by any exclusion.
// Without exclusions the input is returned unchanged.
func (f *Folder) Postprocess(records []Record) []Record {
	if len(f.Exclusions) == 0 {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !f.excludes(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *Folder) excludes(r Record) bool {
	for _, e := range f.Exclusions {
		value := r.String(e.Field)
		for _, sub := range e.Contains {
			if strings.Contains(value, sub) {
				return true
			}
		}
	}
	return false
}

// DefaultFolders returns the built-in folder table.
// A new table is built on every call.
func DefaultFolders() []Folder {
	return []Folder{
		{
			Name:     "math_tasks",
			Behavior: BehaviorDefault,
			Overrides: map[string]Behavior{
				"10th_task.html": BehaviorTable,
			},
			// Problems referring to a picture cannot be represented as text.
			Exclusions: []Exclusion{
				{Field: FieldText, Contains: []string{"рисунок", "рисунк"}},
			},
		},
		{
			Name:     "yes_no_math_tasks",
			Behavior: BehaviorYesNo,
		},
		{
			Name:     "russian_basis_tasks",
			Behavior: BehaviorBasis,
		},
		{
			Name:     "russian_phrase_conn_tasks",
			Behavior: BehaviorPhraseConn,
		},
	}
}

// SelectFolders returns the folders whose names are listed in names, in
// table order. An empty names list selects every folder.
// Returns EINVALID if a name does not match any folder.
func SelectFolders(folders []Folder, names []string) ([]Folder, error) {
	if len(names) == 0 {
		return folders, nil
	}
	for _, name := range names {
		if !slices.ContainsFunc(folders, func(f Folder) bool { return f.Name == name }) {
			return nil, Errorf(EINVALID, "unknown folder %q", name)
		}
	}
	var out []Folder
	for _, f := range folders {
		if slices.Contains(names, f.Name) {
			out = append(out, f)
		}
	}
	return out, nil
}
