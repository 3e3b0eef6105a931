package pdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is a fixed-column range of a PDB record. Start and End are 1-based
// and inclusive, exactly as printed in the format documentation.
type Field struct {
	Name       string
	Start, End int
}

// Columns of ATOM and HETATM records. The unexported ones are not read and
// only complete the layout up to the temperature factor.
var (
	FieldRecordName = Field{"record name", 1, 6}
	fieldSerial     = Field{"serial", 7, 11}
	fieldAtomName   = Field{"atom name", 13, 16}
	fieldAltLoc     = Field{"altLoc", 17, 17}
	FieldResName    = Field{"resName", 18, 20}
	FieldChainID    = Field{"chainID", 22, 22}
	FieldResSeq     = Field{"resSeq", 23, 26}
	FieldICode      = Field{"iCode", 27, 27}
	FieldTempFactor = Field{"tempFactor", 61, 66}
)

// Extract returns the raw, untrimmed text of the field.
func (f Field) Extract(line []byte) (string, error) {
	if len(line) < f.End {
		return "", fmt.Errorf("%s: columns %d-%d past end of %d-column line",
			f.Name, f.Start, f.End, len(line))
	}
	return string(line[f.Start-1 : f.End]), nil
}

// Byte returns the single character at the first column of the field.
func (f Field) Byte(line []byte) (byte, error) {
	if len(line) < f.Start {
		return 0, fmt.Errorf("%s: column %d past end of %d-column line",
			f.Name, f.Start, len(line))
	}
	return line[f.Start-1], nil
}

func (f Field) Int(line []byte) (int, error) {
	s, err := f.Extract(line)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.Name, err)
	}
	return n, nil
}

func (f Field) Float(line []byte) (float64, error) {
	s, err := f.Extract(line)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.Name, err)
	}
	return v, nil
}

// recordName returns the trimmed record name. Short lines such as "END"
// are allowed.
func recordName(line []byte) string {
	end := FieldRecordName.End
	if len(line) < end {
		end = len(line)
	}
	return strings.TrimSpace(string(line[:end]))
}
