// Command af3-pae plots the predicted aligned error matrix and the per-atom
// pLDDT of an AlphaFold3 prediction.
//
//	af3-pae --data_file fold_x_full_data_0.json [--pdb_file fold_x_model_0.pdb]
//
// The images are written next to the data file as <prefix>_PAE.jpeg and
// <prefix>_Plddt.jpeg.
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
	cfg := cli.Init("af3-pae")
	defer logger.Sync()

	var req request.PAERequest
	fs := flag.NewFlagSet("af3-pae", flag.ExitOnError)
	fs.StringVar(&req.DataFile, "data_file", "", "AlphaFold3 <prefix>_full_data_0.json (required)")
	fs.StringVar(&req.PDBFile, "pdb_file", "", "PDB model used to draw chain boundaries")
	fs.Float64Var(&req.DPI, "dpi", cfg.DPI, "output resolution")
	fs.Parse(os.Args[1:])
	cli.Require(fs, "data_file")

	res, err := handler.PAEPlot(req)
	if err != nil {
		logger.Fatal("Plotting failed", zap.Error(err))
	}
	fmt.Println(res.Message())
}
