package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/adapter/jsonfile"
	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/domain"
	"taxi-zebra/internal/logger"
)

func TestStore_roundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "projects.json")
	store := jsonfile.NewStore(path, logger.Discard())

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, "zebra", []domain.Project{
		{ID: 2, Name: "Second", Status: domain.ProjectStatusActive},
		{ID: 1, Name: "First", Team: "7", StartDate: &start, Activities: []domain.Activity{
			{ID: 10, Name: "Dev", Rate: 100, Alias: "first_dev"},
		}},
	}))
	require.NoError(t, store.Save(ctx, "other", []domain.Project{{ID: 1, Name: "Elsewhere"}}))

	p, err := store.Get(ctx, "zebra", 1)
	require.NoError(t, err)
	require.Equal(t, "First", p.Name)
	require.Equal(t, "7", p.Team)
	require.Equal(t, start, *p.StartDate)
	require.Nil(t, p.EndDate)
	require.Equal(t, map[string]int64{"first_dev": 10}, p.Aliases)

	list, err := store.List(ctx, "zebra")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, int64(1), list[0].ID)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "other", all[0].Backend)
}

func TestStore_saveReplacesBackend(t *testing.T) {
	ctx := context.Background()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "projects.json"), logger.Discard())

	require.NoError(t, store.Save(ctx, "zebra", []domain.Project{{ID: 1}, {ID: 2}}))
	require.NoError(t, store.Save(ctx, "zebra", []domain.Project{{ID: 3}}))

	list, err := store.List(ctx, "zebra")
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = store.Get(ctx, "zebra", 1)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_missingAndCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "projects.json")
	store := jsonfile.NewStore(path, logger.Discard())

	list, err := store.List(ctx, "zebra")
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = store.List(ctx, "zebra")
	require.Error(t, err)
}
