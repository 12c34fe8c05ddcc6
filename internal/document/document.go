// SPDX-License-Identifier: MIT
// Package document reads operand files for the mlr CLI.
//
// A document names up to five operands:
//
//	a: [[4, 7], [2, 6]]   # matrix A
//	b: [[1, 0], [0, 1]]   # matrix B
//	u: [1, 0, 0]          # vector U
//	v: [0, 1, 0]          # vector V
//	k: 2.5                # scalar K
//
// YAML and JSON files are decoded with gopkg.in/yaml.v3 (JSON is a YAML
// subset); TOML files with github.com/BurntSushi/toml. Unknown keys are
// rejected. Shapes are not checked here: the kernels validate their operands.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mlr/matrix"
	"github.com/katalvlaran/mlr/vector"
)

var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("document: unsupported format")

	// ErrMissingOperand indicates a command needs an operand the document lacks.
	ErrMissingOperand = errors.New("document: missing operand")

	// ErrMalformedDocument indicates the file could not be decoded.
	ErrMalformedDocument = errors.New("document: malformed document")
)

// Format selects the decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document holds the operands read from one file. Absent operands are nil.
type Document struct {
	A matrix.Matrix `yaml:"a" toml:"a"`
	B matrix.Matrix `yaml:"b" toml:"b"`
	U vector.Vector `yaml:"u" toml:"u"`
	V vector.Vector `yaml:"v" toml:"v"`
	K *float64      `yaml:"k" toml:"k"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads one document from r. An empty input yields an empty Document.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformedDocument, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	return &doc, nil
}

// Matrices returns A and B, failing if either is absent.
func (d *Document) Matrices() (matrix.Matrix, matrix.Matrix, error) {
	a, err := d.MatrixA()
	if err != nil {
		return nil, nil, err
	}
	if d.B == nil {
		return nil, nil, missing("b")
	}

	return a, d.B, nil
}

// MatrixA returns A, failing if it is absent.
func (d *Document) MatrixA() (matrix.Matrix, error) {
	if d.A == nil {
		return nil, missing("a")
	}

	return d.A, nil
}

// Vectors returns U and V, failing if either is absent.
func (d *Document) Vectors() (vector.Vector, vector.Vector, error) {
	u, err := d.VectorU()
	if err != nil {
		return nil, nil, err
	}
	if d.V == nil {
		return nil, nil, missing("v")
	}

	return u, d.V, nil
}

// VectorU returns U, failing if it is absent.
func (d *Document) VectorU() (vector.Vector, error) {
	if d.U == nil {
		return nil, missing("u")
	}

	return d.U, nil
}

// Scalar returns K, failing if it is absent.
func (d *Document) Scalar() (float64, error) {
	if d.K == nil {
		return 0, missing("k")
	}

	return *d.K, nil
}

func missing(name string) error {
	return fmt.Errorf("operand %q: %w", name, ErrMissingOperand)
}
