// Package fileutil provides helpers to load tabular files into memory and
// detect their on-disk format.
package fileutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a tabular file
type Format string

// Supported file formats
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// xlsx files are zip archives
var zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// ReadBuffer loads a whole file into memory for decoding
func ReadBuffer(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return buf, nil
}

// DetectFormat determines the file format from the file extension, falling
// back to content sniffing when the extension is not recognized
func DetectFormat(path string, buf []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".csv":
		return FormatCSV
	}

	if bytes.HasPrefix(buf, zipMagic) {
		return FormatXLSX
	}
	return FormatCSV
}
