package request

// Command-line arguments of each tool, after flag parsing.

// PAERequest drives the PAE/pLDDT-from-JSON plotter.
type PAERequest struct {
	DataFile string  // <prefix>_full_data_0.json
	PDBFile  string  // optional; chain boundaries are drawn when set
	DPI      float64 // output resolution, 0 for the default
}

// PlddtRequest drives both pLDDT-from-PDB plotters.
type PlddtRequest struct {
	PDBFile   string
	OutPrefix string // only used by the banded plot
	DPI       float64
}

const DefaultOutPrefix = "AF3"
