package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadafridishibly/wbf/scanner"
	"github.com/riadafridishibly/wbf/store"
)

func sampleSnapshot() Snapshot {
	agg := NewAggregator(0)
	agg.Accept(scanner.Entry{Path: "/r/a", Size: 100})
	agg.Accept(scanner.Entry{Path: "/r/b", Size: 200})
	agg.Accept(scanner.Entry{Path: "/r/c, with comma", Size: 700})
	return agg.Snapshot()
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSnapshot()))

	want := "\"/r/c, with comma\",700 B,70.00%\n" +
		"/r/b,200 B,20.00%\n" +
		"/r/a,100 B,10.00%\n"
	assert.Equal(t, want, buf.String())
}

func TestExportCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Export(path, sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/r/b,200 B,20.00%\n")
	assert.NotContains(t, string(data), "Percentage of Total", "no header row")
}

func TestExportCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	require.Error(t, Export(path, sampleSnapshot()))
}

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, Export(path, sampleSnapshot()))

	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.All()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, store.Record{
		Path:       "/r/c, with comma",
		Size:       700,
		HumanSize:  "700 B",
		Percentage: "70.00%",
	}, *got[0])
	assert.Equal(t, "/r/a", got[2].Path)
}

func TestExportSQLiteOpenFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.db")

	err := Export(path, sampleSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening output database")
	assert.NoFileExists(t, path)
}
