package af3

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/af3plot/pkg/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name        string
		dataFile    string
		expected    string
		shouldError bool
	}{
		{"ValidName", "fold_x_full_data_0.json", "fold_x", false},
		{"ValidPath", "runs/a/fold_x_full_data_0.json", "runs/a/fold_x", false},
		{"OtherModel", "fold_x_full_data_1.json", "", true},
		{"SummaryFile", "fold_x_summary_confidences_0.json", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Prefix(tt.dataFile)
			if tt.shouldError {
				assert.True(t, errors.Is(err, ErrDataFileSuffix))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummaryPath(t *testing.T) {
	got, err := SummaryPath("out/fold_x_full_data_0.json")
	require.NoError(t, err)
	assert.Equal(t, "out/fold_x_summary_confidences_0.json", got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "fold_x")
	writeFile(t, prefix+DataFileSuffix, `{"pae": [[0.5, 3.0], [2.5, 0.7]], "atom_plddts": [91.5, 88.25, 70], "token_chain_ids": ["A", "B"]}`)
	writeFile(t, prefix+SummarySuffix, `{"ptm": 0.8123, "iptm": 0.655, "ranking_score": 0.9}`)

	pred, err := Load(prefix + DataFileSuffix)
	require.NoError(t, err)

	assert.Equal(t, prefix, pred.Prefix)
	assert.Equal(t, model.PAEMatrix{{0.5, 3.0}, {2.5, 0.7}}, pred.Data.PAE)
	assert.Equal(t, []float64{91.5, 88.25, 70}, pred.Data.AtomPlddts)
	assert.Equal(t, model.Summary{PTM: 0.8123, IPTM: 0.655}, *pred.Summary)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "mono")
	writeFile(t, prefix+DataFileSuffix, `{}`)
	writeFile(t, prefix+SummarySuffix, `{"iptm": null}`)

	pred, err := Load(prefix + DataFileSuffix)
	require.NoError(t, err)

	assert.NotNil(t, pred.Data.PAE)
	assert.Empty(t, pred.Data.PAE)
	assert.NotNil(t, pred.Data.AtomPlddts)
	assert.Empty(t, pred.Data.AtomPlddts)
	assert.Equal(t, model.Summary{}, *pred.Summary)
}

func TestLoadSuffixBeforeIO(t *testing.T) {
	// The file does not exist; the suffix error must win.
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrDataFileSuffix))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "fold_x")

	_, err := Load(prefix + DataFileSuffix)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	writeFile(t, prefix+DataFileSuffix, `{"pae": []}`)
	_, err = Load(prefix + DataFileSuffix)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "summary file is required")
}

func TestLoadTypeMismatch(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "fold_x")
	writeFile(t, prefix+DataFileSuffix, `{"pae": [[1]]}`)
	writeFile(t, prefix+SummarySuffix, `{"ptm": "high"}`)

	_, err := Load(prefix + DataFileSuffix)
	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr))

	writeFile(t, prefix+DataFileSuffix, `{"pae": "none"}`)
	_, err = ReadFullData(prefix + DataFileSuffix)
	assert.Error(t, err)
}
