package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelize.dev/pkg/camelize/internal/model"
)

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "camelize.yaml"))

	report := m.Report{
		Files: []m.ReportFile{
			{
				Path: "src/index.php",
				Hash: "abc",
				Renames: []m.Rename{
					{Old: "user_id", New: "userId", Occurrences: 2},
				},
			},
			{
				Path:  "src/broken.php",
				Error: "syntax errors in source",
			},
		},
	}

	require.NoError(t, store.SaveReport(path, report))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1")
	assert.Contains(t, string(data), "old: user_id")
	assert.NotContains(t, string(data), "delta")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)

	report.Version = m.CurrentReportVersion
	assert.Equal(t, report, loaded)
}

func TestLocalReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()
	root := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadReport(m.Path(filepath.Join(root, "missing.yaml")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(root, "invalid.yaml")
		writeTestFile(t, path, "files: [unterminated\n")

		_, err := store.LoadReport(m.Path(path))
		require.Error(t, err)
	})

	t.Run("unknown version", func(t *testing.T) {
		path := filepath.Join(root, "future.yaml")
		writeTestFile(t, path, "version: 99\nfiles: []\n")

		_, err := store.LoadReport(m.Path(path))
		require.ErrorIs(t, err, ErrReportVersion)
	})
}
