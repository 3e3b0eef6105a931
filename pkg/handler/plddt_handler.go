package handler

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/yumyai/af3plot/internal/util"
	"github.com/yumyai/af3plot/logger"
	"github.com/yumyai/af3plot/pkg/handler/request"
	"github.com/yumyai/af3plot/pkg/model"
	"github.com/yumyai/af3plot/pkg/pdb"
	"github.com/yumyai/af3plot/pkg/render"
)

type traceRenderer func(path string, trace model.Trace, opts render.Options) error

func plotTrace(pdbFile, outPath string, dpi float64, draw traceRenderer) (*Result, error) {
	trace, err := pdb.ReadTrace(pdbFile)
	if err != nil {
		return nil, err
	}

	logger.Info("Read residues",
		zap.String("pdb", pdbFile),
		zap.Int("residues", trace.Len()),
		zap.Int("chains", trace.Chains()),
		zap.Ints("breaks", trace.Breaks))

	if err := draw(outPath, trace, renderOptions(dpi)); err != nil {
		return nil, fmt.Errorf("pLDDT plot: %w", err)
	}

	return &Result{
		Outputs: []string{outPath},
		message: "Saved pLDDT plot to: " + outPath,
	}, nil
}

// PlddtColored writes <out prefix>_plddt.jpeg: the per-residue pLDDT over
// shaded confidence tiers. The directory of the prefix must already exist.
func PlddtColored(req request.PlddtRequest) (*Result, error) {
	prefix := req.OutPrefix
	if prefix == "" {
		prefix = request.DefaultOutPrefix
	}
	if dir := filepath.Dir(prefix); !util.DirExists(dir) {
		return nil, fmt.Errorf("output directory %s does not exist", dir)
	}
	return plotTrace(req.PDBFile, prefix+"_plddt.jpeg", req.DPI, render.PlddtBands)
}

// PlddtPlain writes <pdb name>_plddt.jpeg to the working directory.
func PlddtPlain(req request.PlddtRequest) (*Result, error) {
	return plotTrace(req.PDBFile, util.BaseName(req.PDBFile)+"_plddt.jpeg", req.DPI, render.PlddtPlain)
}
