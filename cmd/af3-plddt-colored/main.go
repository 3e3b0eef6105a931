// Command af3-plddt-colored plots the per-residue pLDDT of a PDB model over
// the AlphaFold confidence tiers and writes <out_prefix>_plddt.jpeg.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yumyai/af3plot/internal/cli"
	"github.com/yumyai/af3plot/logger"
	"github.com/yumyai/af3plot/pkg/handler"
	"github.com/yumyai/af3plot/pkg/handler/request"
)

func main() {
	cfg := cli.Init("af3-plddt-colored")
	defer logger.Sync()

	var req request.PlddtRequest
	fs := flag.NewFlagSet("af3-plddt-colored", flag.ExitOnError)
	fs.StringVar(&req.PDBFile, "pdb_file", "", "PDB model with pLDDT in the B-factor column (required)")
	fs.StringVar(&req.OutPrefix, "out_prefix", request.DefaultOutPrefix, "output file prefix")
	fs.Float64Var(&req.DPI, "dpi", cfg.DPI, "output resolution")
	fs.Parse(os.Args[1:])
	cli.Require(fs, "pdb_file")

	res, err := handler.PlddtColored(req)
	if err != nil {
		logger.Fatal("Plotting failed", zap.Error(err))
	}
	fmt.Println(res.Message())
}
