package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/ingestion-service/pkg/fileutil"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
		buf  []byte
		want fileutil.Format
	}{
		{"xlsx extension", "statements.xlsx", nil, fileutil.FormatXLSX},
		{"xlsm extension", "statements.XLSM", nil, fileutil.FormatXLSX},
		{"csv extension", "statements.csv", nil, fileutil.FormatCSV},
		{"no extension, zip magic", "export", []byte{0x50, 0x4b, 0x03, 0x04, 0x00}, fileutil.FormatXLSX},
		{"no extension, plain text", "export", []byte("id,amount\n"), fileutil.FormatCSV},
		{"unknown extension falls back to sniffing", "export.dat", []byte("id,amount\n"), fileutil.FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileutil.DetectFormat(tt.path, tt.buf))
		})
	}
}

func TestReadBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,amount\n1,100\n"), 0644))

	buf, err := fileutil.ReadBuffer(path)

	require.NoError(t, err)
	assert.Equal(t, []byte("id,amount\n1,100\n"), buf)
}

func TestReadBuffer_MissingFile(t *testing.T) {
	_, err := fileutil.ReadBuffer(filepath.Join(t.TempDir(), "nope.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}
