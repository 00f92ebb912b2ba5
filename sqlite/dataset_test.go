package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/probset"
	"github.com/fwojciec/probset/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetService_WriteDataset(t *testing.T) {
	t.Parallel()

	t.Run("round trips records in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)
		ctx := context.Background()

		ds := &probset.Dataset{
			Name: "yes_no_math_tasks",
			Records: []probset.Record{
				probset.NewRecord(
					probset.Field{Name: probset.FieldStatement, Value: "Число 7 простое"},
					probset.Field{Name: probset.FieldLabel, Value: true},
					probset.Field{Name: probset.FieldSource, Value: "1.html"},
				),
				probset.NewRecord(
					probset.Field{Name: probset.FieldStatement, Value: "Число 9 простое"},
					probset.Field{Name: probset.FieldLabel, Value: false},
					probset.Field{Name: probset.FieldSource, Value: "1.html"},
				),
			},
		}

		require.NoError(t, svc.WriteDataset(ctx, ds))

		got, err := svc.FindDataset(ctx, "yes_no_math_tasks")
		require.NoError(t, err)
		assert.Equal(t, ds.Name, got.Name)
		require.Len(t, got.Records, 2)
		assert.Equal(t, "Число 7 простое", got.Records[0].String(probset.FieldStatement))
		assert.True(t, got.Records[0].Bool(probset.FieldLabel))
		assert.False(t, got.Records[1].Bool(probset.FieldLabel))
		assert.True(t, ds.Records[0].ContentEqual(got.Records[0]))
	})

	t.Run("replaces an existing dataset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)
		ctx := context.Background()

		first := &probset.Dataset{Name: "math_tasks", Records: []probset.Record{
			probset.NewRecord(probset.Field{Name: probset.FieldText, Value: "old"}),
			probset.NewRecord(probset.Field{Name: probset.FieldText, Value: "older"}),
		}}
		second := &probset.Dataset{Name: "math_tasks", Records: []probset.Record{
			probset.NewRecord(probset.Field{Name: probset.FieldText, Value: "new"}),
		}}

		require.NoError(t, svc.WriteDataset(ctx, first))
		require.NoError(t, svc.WriteDataset(ctx, second))

		got, err := svc.FindDataset(ctx, "math_tasks")
		require.NoError(t, err)
		require.Len(t, got.Records, 1)
		assert.Equal(t, "new", got.Records[0].String(probset.FieldText))

		var orphans int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&orphans)
		require.NoError(t, err)
		assert.Equal(t, 1, orphans)
	})

	t.Run("stores an empty dataset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)
		ctx := context.Background()

		require.NoError(t, svc.WriteDataset(ctx, &probset.Dataset{Name: "empty"}))

		got, err := svc.FindDataset(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, got.Records)
	})

	t.Run("rejects invalid dataset name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)

		err := svc.WriteDataset(context.Background(), &probset.Dataset{})
		require.Error(t, err)
		assert.Equal(t, probset.EINVALID, probset.ErrorCode(err))
	})
}

func TestDatasetService_FindDataset(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown dataset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)

		_, err := svc.FindDataset(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, probset.ENOTFOUND, probset.ErrorCode(err))
	})
}

func TestDatasetService_FindDatasets(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewDatasetService(db)
	ctx := context.Background()

	require.NoError(t, svc.WriteDataset(ctx, &probset.Dataset{Name: "yes_no_math_tasks", Records: []probset.Record{
		probset.NewRecord(probset.Field{Name: probset.FieldStatement, Value: "a"}),
	}}))
	require.NoError(t, svc.WriteDataset(ctx, &probset.Dataset{Name: "math_tasks", Records: []probset.Record{
		probset.NewRecord(probset.Field{Name: probset.FieldText, Value: "a"}),
		probset.NewRecord(probset.Field{Name: probset.FieldText, Value: "b"}),
	}}))
	require.NoError(t, svc.WriteDataset(ctx, &probset.Dataset{Name: "empty"}))

	got, err := svc.FindDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "empty", got[0].Name)
	assert.Equal(t, 0, got[0].RecordCount)
	assert.Equal(t, "math_tasks", got[1].Name)
	assert.Equal(t, 2, got[1].RecordCount)
	assert.Equal(t, "yes_no_math_tasks", got[2].Name)
	assert.Equal(t, 1, got[2].RecordCount)
	assert.False(t, got[1].WrittenAt.IsZero())
}
