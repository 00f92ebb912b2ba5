package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/probset"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ probset.DatasetService = (*DatasetService)(nil)

// DatasetService implements probset.DatasetService using SQLite.
type DatasetService struct {
	db *DB
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(db *DB) *DatasetService {
	return &DatasetService{db: db}
}

// WriteDataset replaces the named dataset and its records in a single
// transaction.
func (s *DatasetService) WriteDataset(ctx context.Context, ds *probset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Records are removed by the ON DELETE CASCADE constraint.
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, ds.Name); err != nil {
		return err
	}

	datasetID := uuid.New().String()
	writtenAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (id, name, written_at)
		VALUES (?, ?, ?)
	`, datasetID, ds.Name, writtenAt); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, dataset_id, position, source, content, content_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range ds.Records {
		content, err := r.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), datasetID, i,
			r.String(probset.FieldSource), string(content), formatHash(r.ContentHash())); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDataset retrieves a dataset with its records in written order.
func (s *DatasetService) FindDataset(ctx context.Context, name string) (*probset.Dataset, error) {
	var datasetID string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM datasets WHERE name = ?`, name).Scan(&datasetID)
	if err == sql.ErrNoRows {
		return nil, probset.Errorf(probset.ENOTFOUND, "dataset %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT content FROM records
		WHERE dataset_id = ?
		ORDER BY position ASC
	`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ds := &probset.Dataset{Name: name, Records: []probset.Record{}}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		var r probset.Record
		if err := json.Unmarshal([]byte(content), &r); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}
		ds.Records = append(ds.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ds, nil
}

// FindDatasets lists stored datasets ordered by name.
func (s *DatasetService) FindDatasets(ctx context.Context) ([]*probset.DatasetSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.name, d.written_at, COUNT(r.id)
		FROM datasets d
		LEFT JOIN records r ON r.dataset_id = d.id
		GROUP BY d.id
		ORDER BY d.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*probset.DatasetSummary
	for rows.Next() {
		var summary probset.DatasetSummary
		var writtenAt string
		if err := rows.Scan(&summary.Name, &writtenAt, &summary.RecordCount); err != nil {
			return nil, err
		}
		if summary.WrittenAt, err = parseRFC3339(writtenAt, "written_at"); err != nil {
			return nil, err
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
