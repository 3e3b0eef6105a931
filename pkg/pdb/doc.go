/*
Package pdb reads the little that the plotting tools need from legacy PDB
text files: the chain, residue number and B-factor of every ATOM record,
and the number of amino-acid residues in every chain.

Structure-prediction tools store their per-residue confidence (pLDDT) in
the B-factor column. That convention is assumed here and never checked.

Files ending in ".gz" are decompressed transparently.
*/
package pdb
