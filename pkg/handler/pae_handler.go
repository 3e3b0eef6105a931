package handler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yumyai/af3plot/logger"
	"github.com/yumyai/af3plot/pkg/af3"
	"github.com/yumyai/af3plot/pkg/handler/request"
	"github.com/yumyai/af3plot/pkg/model"
	"github.com/yumyai/af3plot/pkg/pdb"
	"github.com/yumyai/af3plot/pkg/render"
)

// PAEPlot writes <prefix>_PAE.jpeg and <prefix>_Plddt.jpeg from an
// AlphaFold3 <prefix>_full_data_0.json and its summary file. Chain
// boundaries are taken from the PDB file when one is given.
//
// The data file name is checked before anything is read. If the second
// image fails, the first one is left in place. Unlike the AF3-PAE.py
// script, which writes <prefix>_full_data_0_PAE.jpeg, the images are named
// after the prefix alone.
func PAEPlot(req request.PAERequest) (*Result, error) {
	pred, err := af3.Load(req.DataFile)
	if err != nil {
		return nil, err
	}

	boundaries, err := chainBoundaries(req.PDBFile)
	if err != nil {
		return nil, err
	}

	rows, cols := pred.Data.PAE.Dims()
	logger.Info("Loaded prediction",
		zap.String("prefix", pred.Prefix),
		zap.Int("pae_rows", rows),
		zap.Int("pae_cols", cols),
		zap.Int("atom_plddts", len(pred.Data.AtomPlddts)),
		zap.Float64("ptm", pred.Summary.PTM),
		zap.Float64("iptm", pred.Summary.IPTM),
		zap.Ints("boundaries", boundaries))

	opts := renderOptions(req.DPI)
	paePath := pred.Prefix + "_PAE.jpeg"
	plddtPath := pred.Prefix + "_Plddt.jpeg"

	if err := render.PAEHeatmap(paePath, pred.Data.PAE, *pred.Summary, boundaries, opts); err != nil {
		return nil, fmt.Errorf("PAE plot: %w", err)
	}
	if err := render.AtomPlddt(plddtPath, pred.Data.AtomPlddts, boundaries, opts); err != nil {
		logger.Error("pLDDT plot failed, keeping PAE plot", zap.String("path", paePath), zap.Error(err))
		return nil, fmt.Errorf("pLDDT plot: %w", err)
	}

	return &Result{
		Outputs: []string{paePath, plddtPath},
		message: fmt.Sprintf("Saved: %s and %s", paePath, plddtPath),
	}, nil
}

// chainBoundaries is empty when no PDB file is given.
func chainBoundaries(pdbFile string) ([]int, error) {
	if pdbFile == "" {
		logger.Debug("No PDB file, skipping chain boundaries")
		return []int{}, nil
	}

	counts, err := pdb.ReadChainCounts(pdbFile)
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		logger.Debug("Chain", zap.String("id", string(c.Ident)), zap.Int("residues", c.Residues))
	}
	return model.BoundariesFromCounts(counts), nil
}
