package pdb

import "strings"

// aminoMap maps three letter residue names to their one letter code. Besides
// the standard amino acids it holds the modified residues that structure
// predictors commonly write out, so that e.g. a selenomethionine is still
// counted as part of its protein chain.
var aminoMap = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
	"UNK": 'X', "ASX": 'B', "GLX": 'Z', "XLE": 'J',

	// modified residues
	"MSE": 'M', "SEP": 'S', "TPO": 'T', "PTR": 'Y', "HYP": 'P',
	"MLY": 'K', "M3L": 'K', "ALY": 'K', "KCX": 'K', "LLP": 'K',
	"CSO": 'C', "CSD": 'C', "CME": 'C', "OCS": 'C', "SMC": 'C',
	"PCA": 'E', "NEP": 'H', "HIC": 'H', "DLE": 'L',
}

// IsAmino reports whether a residue name is an amino acid. Waters, ions,
// ligands and nucleotides are not.
func IsAmino(resName string) bool {
	_, ok := aminoMap[strings.ToUpper(strings.TrimSpace(resName))]
	return ok
}
