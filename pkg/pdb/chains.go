package pdb

import (
	"io"

	"go.uber.org/multierr"

	"github.com/yumyai/af3plot/pkg/model"
)

// residueKey identifies a residue within a chain the way structure parsers
// do: hetero residues are kept apart from standard ones even when they share
// a sequence number.
type residueKey struct {
	het     bool
	resName string
	resSeq  int
	iCode   byte
}

// ScanChainCounts counts the amino-acid residues of every chain in the first
// model, in the order chains are first seen. Both ATOM and HETATM records
// are considered, so modified residues written as HETATM are counted while
// waters and ligands are not. A chain holding only ligands is reported with
// zero residues.
func ScanChainCounts(r io.Reader) ([]model.ChainCount, error) {
	var order []byte
	seen := make(map[byte]map[residueKey]bool)

	err := eachLine(r, func(_ int, line []byte) (bool, error) {
		name := recordName(line)
		switch name {
		case "ENDMDL":
			return true, nil
		case "ATOM", "HETATM":
		default:
			return false, nil
		}

		chain, err := FieldChainID.Byte(line)
		if err != nil {
			return false, err
		}
		residues, ok := seen[chain]
		if !ok {
			residues = make(map[residueKey]bool)
			seen[chain] = residues
			order = append(order, chain)
		}

		resName, err := FieldResName.Extract(line)
		if err != nil {
			return false, err
		}
		if !IsAmino(resName) {
			return false, nil
		}

		resSeq, err := FieldResSeq.Int(line)
		if err != nil {
			return false, err
		}
		iCode, err := FieldICode.Byte(line)
		if err != nil {
			return false, err
		}

		key := residueKey{het: name == "HETATM", resSeq: resSeq, iCode: iCode}
		if key.het {
			key.resName = resName
		}

		residues[key] = true
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	counts := make([]model.ChainCount, 0, len(order))
	for _, ident := range order {
		counts = append(counts, model.ChainCount{Ident: ident, Residues: len(seen[ident])})
	}
	return counts, nil
}

// ReadChainCounts is ScanChainCounts on a file.
func ReadChainCounts(fileName string) (counts []model.ChainCount, err error) {
	rc, err := Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, rc.Close())
	}()

	counts, err = ScanChainCounts(rc)
	return counts, withPath(err, fileName)
}
