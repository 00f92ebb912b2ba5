package probset

import (
	"context"
	"strings"
	"time"
)

// Dataset is the ordered, deduplicated set of records of one folder.
type Dataset struct {
	Name    string   `json:"name"`
	Records []Record `json:"records"`
}

// Validate returns an error if the dataset contains invalid fields.
func (d *Dataset) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "dataset name required")
	}
	if strings.ContainsAny(d.Name, `/\`) {
		return Errorf(EINVALID, "dataset name %q must not contain path separators", d.Name)
	}
	return nil
}

// DatasetWriter persists datasets. Writing a dataset replaces any
// previously written dataset of the same name.
type DatasetWriter interface {
	WriteDataset(ctx context.Context, ds *Dataset) error
}

// DatasetSummary describes a stored dataset.
type DatasetSummary struct {
	Name        string    `json:"name"`
	RecordCount int       `json:"recordCount"`
	WrittenAt   time.Time `json:"writtenAt"`
}

// DatasetService represents a service for managing stored datasets.
type DatasetService interface {
	DatasetWriter

	// FindDataset retrieves a dataset by name.
	// Returns ENOTFOUND if the dataset does not exist.
	FindDataset(ctx context.Context, name string) (*Dataset, error)

	// FindDatasets lists stored datasets ordered by name.
	FindDatasets(ctx context.Context) ([]*DatasetSummary, error)
}

// PageSource enumerates and reads the HTML pages of category folders.
type PageSource interface {
	// ListPages returns the page names of a folder in processing order.
	// Returns ENOTFOUND if the folder does not exist.
	ListPages(ctx context.Context, folder string) ([]string, error)

	// ReadPage returns the content of a page.
	ReadPage(ctx context.Context, folder, page string) (string, error)
}
