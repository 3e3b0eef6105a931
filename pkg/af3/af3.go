// Package af3 reads the confidence files that AlphaFold3 writes next to
// every predicted model.
package af3

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yumyai/af3plot/pkg/model"
)

const (
	DataFileSuffix = "_full_data_0.json"
	SummarySuffix  = "_summary_confidences_0.json"
)

var ErrDataFileSuffix = errors.New("data file must end with '" + DataFileSuffix + "'")

// FullData is the subset of <prefix>_full_data_0.json that is plotted.
type FullData struct {
	PAE        model.PAEMatrix `json:"pae"`
	AtomPlddts []float64       `json:"atom_plddts"`
}

// Prediction bundles both confidence files of one model.
type Prediction struct {
	Prefix  string
	Data    *FullData
	Summary *model.Summary
}

// Prefix strips DataFileSuffix from dataFile. It only looks at the name.
func Prefix(dataFile string) (string, error) {
	if !strings.HasSuffix(dataFile, DataFileSuffix) {
		return "", fmt.Errorf("%w: %q", ErrDataFileSuffix, dataFile)
	}
	return strings.TrimSuffix(dataFile, DataFileSuffix), nil
}

// SummaryPath returns the summary file that belongs to dataFile.
func SummaryPath(dataFile string) (string, error) {
	prefix, err := Prefix(dataFile)
	if err != nil {
		return "", err
	}
	return prefix + SummarySuffix, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// ReadFullData reads the PAE matrix and the per-atom pLDDTs. Missing keys
// give empty slices.
func ReadFullData(path string) (*FullData, error) {
	var fd FullData
	if err := readJSON(path, &fd); err != nil {
		return nil, err
	}
	if fd.PAE == nil {
		fd.PAE = model.PAEMatrix{}
	}
	if fd.AtomPlddts == nil {
		fd.AtomPlddts = []float64{}
	}
	return &fd, nil
}

// ReadSummary reads ptm and iptm. A missing or null value reads as zero.
func ReadSummary(path string) (*model.Summary, error) {
	var s model.Summary
	if err := readJSON(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load checks the name of dataFile before touching the file system, then
// reads it and its summary file.
func Load(dataFile string) (*Prediction, error) {
	prefix, err := Prefix(dataFile)
	if err != nil {
		return nil, err
	}

	data, err := ReadFullData(dataFile)
	if err != nil {
		return nil, err
	}

	summary, err := ReadSummary(prefix + SummarySuffix)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		Prefix:  prefix,
		Data:    data,
		Summary: summary,
	}, nil
}
