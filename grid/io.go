package grid

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ReadFrom reads an n³-cell field from r in the flat binary grid format:
// little-endian float64 samples in row-major order with no header.
func ReadFrom(r io.Reader, n int, boxSize float64) (*Field, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidGridSize, n)
	}

	data := make([]float64, n*n*n)
	if err := binary.Read(bufio.NewReader(r), binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("grid: reading %d samples: %w", len(data), err)
	}

	return New(n, boxSize, data)
}

// WriteTo writes the field samples to w in the flat binary grid format.
func (f *Field) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, f.Data); err != nil {
		return fmt.Errorf("grid: writing %d samples: %w", len(f.Data), err)
	}
	return bw.Flush()
}

// Load reads a field from the file at path.
func Load(path string, n int, boxSize float64) (*Field, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: opening %s: %w", path, err)
	}
	defer file.Close()

	return ReadFrom(file, n, boxSize)
}

// Save writes the field to the file at path, replacing it if present.
func (f *Field) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid: creating %s: %w", path, err)
	}

	if err := f.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
