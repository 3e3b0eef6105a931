package pdb

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/af3plot/pkg/model"
)

// atomLine formats a record with the standard PDB column layout.
func atomLine(record string, serial int, atom, resName string, chain byte, resSeq int, bfactor float64) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		record, serial, atom, resName, chain, resSeq, 1.0, 2.0, 3.0, 1.0, bfactor, atom[:1])
}

type residue struct {
	chain   byte
	resSeq  int
	resName string
	bfactor float64
}

// buildPDB writes three ATOM records per residue, TER between chains and a
// trailing ligand and water.
func buildPDB(residues []residue) string {
	var b strings.Builder
	b.WriteString("HEADER    AF3 PREDICTION\n")
	serial := 1
	for i, r := range residues {
		if i > 0 && residues[i-1].chain != r.chain {
			b.WriteString("TER\n")
		}
		for _, atom := range []string{"N", "CA", "C"} {
			b.WriteString(atomLine("ATOM", serial, atom, r.resName, r.chain, r.resSeq, r.bfactor))
			b.WriteString("\n")
			serial++
		}
	}
	b.WriteString(atomLine("HETATM", serial, "C1", "ATP", 'Z', 1, 77.0) + "\n")
	b.WriteString(atomLine("HETATM", serial+1, "O", "HOH", 'W', 1, 10.0) + "\n")
	b.WriteString("END\n")
	return b.String()
}

func chainResidues(chain byte, n int, bfactor float64) []residue {
	rs := make([]residue, n)
	for i := range rs {
		rs[i] = residue{chain: chain, resSeq: i + 1, resName: "ALA", bfactor: bfactor}
	}
	return rs
}

func TestFieldColumns(t *testing.T) {
	line := []byte(atomLine("ATOM", 42, "CA", "GLY", 'B', 1234, 87.25))

	tests := []struct {
		field    Field
		expected string
	}{
		{FieldRecordName, "ATOM  "},
		{fieldSerial, "   42"},
		{fieldAtomName, "CA  "},
		{fieldAltLoc, " "},
		{FieldResName, "GLY"},
		{FieldChainID, "B"},
		{FieldResSeq, "1234"},
		{FieldICode, " "},
		{FieldTempFactor, " 87.25"},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			got, err := tt.field.Extract(line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFieldShortLine(t *testing.T) {
	_, err := FieldTempFactor.Extract([]byte("ATOM      1  N   ALA A   1"))
	assert.Error(t, err)

	_, err = FieldChainID.Byte([]byte("ATOM"))
	assert.Error(t, err)
}

func TestScanResidues(t *testing.T) {
	input := buildPDB(append(chainResidues('A', 4, 90), chainResidues('B', 2, 35.5)...))

	records, err := ScanResidues(strings.NewReader(input))
	require.NoError(t, err)

	// Three atoms per residue; HETATM lines are skipped.
	require.Len(t, records, 18)
	assert.Equal(t, model.ResidueRecord{Chain: 'A', ResSeq: 1, Value: 90}, records[0])
	assert.Equal(t, model.ResidueRecord{Chain: 'B', ResSeq: 2, Value: 35.5}, records[17])
}

func TestScanResiduesCRLF(t *testing.T) {
	input := strings.ReplaceAll(buildPDB(chainResidues('A', 2, 50)), "\n", "\r\n")

	records, err := ScanResidues(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 6)
}

func TestScanResiduesMalformed(t *testing.T) {
	good := atomLine("ATOM", 1, "N", "ALA", 'A', 1, 50)
	bad := strings.Replace(atomLine("ATOM", 2, "CA", "ALA", 'A', 1, 50), " 50.00", " 5x.00", 1)

	_, err := ScanResidues(strings.NewReader(good + "\n" + bad + "\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, err.Error(), "tempFactor")
}

func TestReadTraceRoundTrip(t *testing.T) {
	n, m := 25, 13
	path := filepath.Join(t.TempDir(), "model.pdb")
	writeFile(t, path, buildPDB(append(chainResidues('A', n, 90), chainResidues('B', m, 40)...)))

	trace, err := ReadTrace(path)
	require.NoError(t, err)

	assert.Equal(t, n+m, trace.Len())
	assert.Equal(t, []int{n}, trace.Breaks)
	assert.Equal(t, 90.0, trace.Plddt[0])
	assert.Equal(t, 40.0, trace.Plddt[n])
}

func TestReadTraceGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(buildPDB(chainResidues('A', 7, 66))))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "model.pdb.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	trace, err := ReadTrace(path)
	require.NoError(t, err)
	assert.Equal(t, 7, trace.Len())
	assert.Empty(t, trace.Breaks)
}

func TestReadTraceErrors(t *testing.T) {
	_, err := ReadTrace(filepath.Join(t.TempDir(), "missing.pdb"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	path := filepath.Join(t.TempDir(), "bad.pdb")
	writeFile(t, path, "ATOM      1  N   ALA A  x1      1.000   2.000   3.000  1.00 50.00           N\n")
	_, err = ReadTrace(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestScanChainCounts(t *testing.T) {
	residues := append(chainResidues('A', 10, 90), chainResidues('B', 4, 90)...)
	counts, err := ScanChainCounts(strings.NewReader(buildPDB(residues)))
	require.NoError(t, err)

	// Ligand chain Z and water chain W are kept with no amino acids.
	assert.Equal(t, []model.ChainCount{
		{Ident: 'A', Residues: 10},
		{Ident: 'B', Residues: 4},
		{Ident: 'Z', Residues: 0},
		{Ident: 'W', Residues: 0},
	}, counts)
	assert.Equal(t, []int{10, 14}, model.BoundariesFromCounts(counts))
}

func TestScanChainCountsTrailingLigand(t *testing.T) {
	var b strings.Builder
	serial := 1
	for _, r := range append(chainResidues('A', 5, 90), chainResidues('B', 3, 90)...) {
		b.WriteString(atomLine("ATOM", serial, "CA", r.resName, r.chain, r.resSeq, r.bfactor) + "\n")
		serial++
	}
	for _, atom := range []string{"PG", "O1G", "C1'"} {
		b.WriteString(atomLine("HETATM", serial, atom, "ATP", 'C', 1, 70) + "\n")
		serial++
	}
	b.WriteString("END\n")

	counts, err := ScanChainCounts(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, []model.ChainCount{
		{Ident: 'A', Residues: 5},
		{Ident: 'B', Residues: 3},
		{Ident: 'C', Residues: 0},
	}, counts)

	// The last boundary marks the end of the protein.
	assert.Equal(t, []int{5, 8}, model.BoundariesFromCounts(counts))
}

func TestScanChainCountsModifiedAndModels(t *testing.T) {
	var b strings.Builder
	b.WriteString("MODEL        1\n")
	b.WriteString(atomLine("ATOM", 1, "N", "ALA", 'A', 1, 90) + "\n")
	b.WriteString(atomLine("HETATM", 2, "N", "MSE", 'A', 2, 90) + "\n")
	b.WriteString(atomLine("HETATM", 3, "CA", "MSE", 'A', 2, 90) + "\n")
	b.WriteString(atomLine("ATOM", 4, "N", "GLY", 'A', 3, 90) + "\n")
	b.WriteString(atomLine("HETATM", 5, "O", "HOH", 'A', 101, 90) + "\n")
	b.WriteString("ENDMDL\n")
	b.WriteString("MODEL        2\n")
	b.WriteString(atomLine("ATOM", 1, "N", "ALA", 'C', 1, 90) + "\n")
	b.WriteString("ENDMDL\n")

	counts, err := ScanChainCounts(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, []model.ChainCount{{Ident: 'A', Residues: 3}}, counts)
}

func TestReadChainCountsMissing(t *testing.T) {
	_, err := ReadChainCounts(filepath.Join(t.TempDir(), "nope.pdb"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestIsAmino(t *testing.T) {
	assert.True(t, IsAmino("ALA"))
	assert.True(t, IsAmino(" mse"))
	assert.False(t, IsAmino("HOH"))
	assert.False(t, IsAmino("DA"))
	assert.False(t, IsAmino("ATP"))
}

func BenchmarkScanResidues(b *testing.B) {
	var residues []residue
	for _, c := range []byte("ABCD") {
		residues = append(residues, chainResidues(c, 500, 80)...)
	}
	input := buildPDB(residues)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ScanResidues(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
