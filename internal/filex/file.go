// Package filex reads local files for upload.
package filex

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// MaxSyllabusSize caps syllabus uploads.
const MaxSyllabusSize = 20 << 20

var (
	ErrNotPDF   = errors.New("file is not a PDF document")
	ErrTooLarge = errors.New("file is too large")
	ErrEmpty    = errors.New("file is empty")
)

var pdfMagic = []byte("%PDF-")

// ReadPDF reads the file at path and checks that it looks like a PDF no
// larger than maxSize bytes.
func ReadPDF(path string, maxSize int64) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return nil, ErrEmpty
	}
	if fi.Size() > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, fi.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, ErrNotPDF
	}
	return data, nil
}
