package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"

	"go.uber.org/multierr"

	"github.com/yumyai/af3plot/pkg/model"
)

// maxLineLength bounds a single record. PDB lines are 80 columns, but some
// writers append long trailing fields.
const maxLineLength = 64 * 1024

// ParseError reports a malformed record.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	return multierr.Combine(g.Reader.Close(), g.f.Close())
}

// Open opens a PDB file for reading. If the file name ends with ".gz",
// gzip decompression is used.
func Open(fileName string) (io.ReadCloser, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}

	if path.Ext(fileName) != ".gz" {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return gzipFile{Reader: gz, f: f}, nil
}

// eachLine calls fn for every line of r with its 1-based line number.
// Carriage returns are stripped. Iteration stops at the first error.
func eachLine(r io.Reader, fn func(num int, line []byte) (stop bool, err error)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), maxLineLength)

	num := 0
	for scanner.Scan() {
		num++
		line := scanner.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		stop, err := fn(num, line)
		if err != nil {
			return &ParseError{Line: num, Err: err}
		}
		if stop {
			return nil
		}
	}
	return scanner.Err()
}

// ScanResidues reads the chain identifier (column 22), residue sequence
// number (columns 23-26) and B-factor (columns 61-66) of every ATOM record,
// in file order. All other records, HETATM included, are skipped.
func ScanResidues(r io.Reader) ([]model.ResidueRecord, error) {
	records := make([]model.ResidueRecord, 0, 1024)

	err := eachLine(r, func(_ int, line []byte) (bool, error) {
		if recordName(line) != "ATOM" {
			return false, nil
		}

		chain, err := FieldChainID.Byte(line)
		if err != nil {
			return false, err
		}
		resSeq, err := FieldResSeq.Int(line)
		if err != nil {
			return false, err
		}
		bfactor, err := FieldTempFactor.Float(line)
		if err != nil {
			return false, err
		}

		records = append(records, model.ResidueRecord{
			Chain:  chain,
			ResSeq: resSeq,
			Value:  bfactor,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ReadResidues is ScanResidues on a file.
func ReadResidues(fileName string) (records []model.ResidueRecord, err error) {
	rc, err := Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, rc.Close())
	}()

	records, err = ScanResidues(rc)
	return records, withPath(err, fileName)
}

// ReadTrace reads one pLDDT value per residue from a PDB file and records
// where the chain identifier changes.
func ReadTrace(fileName string) (model.Trace, error) {
	records, err := ReadResidues(fileName)
	if err != nil {
		return model.Trace{}, err
	}
	return model.BuildTrace(records), nil
}

func withPath(err error, fileName string) error {
	if perr, ok := err.(*ParseError); ok {
		perr.Path = fileName
	}
	return err
}
