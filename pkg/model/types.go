package model

import "fmt"

// PAEMatrix is the predicted aligned error, indexed [aligned][scored].
type PAEMatrix [][]float64

// Dims returns the number of rows and the widest row.
func (m PAEMatrix) Dims() (rows, cols int) {
	rows = len(m)
	for _, row := range m {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}

// Summary holds the scalar confidences of one prediction.
type Summary struct {
	PTM  float64 `json:"ptm"`
	IPTM float64 `json:"iptm"`
}

// Label is the colour-bar annotation for a PAE plot.
func (s Summary) Label() string {
	return fmt.Sprintf("ptm=%.3f  iptm=%.3f", s.PTM, s.IPTM)
}

// ResidueRecord is what one ATOM line contributes: the chain, the residue
// sequence number and the confidence stored in the B-factor column.
type ResidueRecord struct {
	Chain  byte
	ResSeq int
	Value  float64
}

// ChainCount is the number of amino-acid residues found in one chain.
type ChainCount struct {
	Ident    byte
	Residues int
}

// Trace is a per-residue confidence profile.
//
// Residues holds the running index (1-based) of every residue, Plddt the
// confidence of each residue at the same position and Breaks the running
// index of the last residue before every chain change.
type Trace struct {
	Residues []int
	Plddt    []float64
	Breaks   []int
}

func (t Trace) Len() int {
	return len(t.Residues)
}

// Chains returns the number of contiguous chain segments.
func (t Trace) Chains() int {
	if t.Len() == 0 {
		return 0
	}
	return len(t.Breaks) + 1
}
