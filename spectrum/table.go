package spectrum

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
)

// Bin is one radial wavenumber shell of the output spectrum: the bin-center
// wavenumber, the averaged cross-power, and the fold-weighted number of
// frequency cells that contributed.
type Bin struct {
	K     float64 `csv:"k"`
	Power float64 `csv:"power"`
	Count float64 `csv:"count"`
}

// Table is the ordered (k, P(k), count) result of the binner, one row per
// non-empty shell, ordered by increasing k.
type Table []Bin

// WriteText writes the table as aligned text columns with a header row.
func (t Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tP(k)\tcount")
	for _, b := range t {
		fmt.Fprintf(tw, "%.8g\t%.8g\t%g\n", b.K, b.Power, b.Count)
	}
	return tw.Flush()
}

// WriteCSV writes the table as CSV with a header row.
func (t Table) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal([]Bin(t), w); err != nil {
		return fmt.Errorf("spectrum: writing table: %w", err)
	}
	return nil
}

// ReadCSVTable parses a table previously written by WriteCSV.
func ReadCSVTable(r io.Reader) (Table, error) {
	var bins []Bin
	if err := gocsv.Unmarshal(r, &bins); err != nil {
		return nil, fmt.Errorf("spectrum: parsing table: %w", err)
	}
	return Table(bins), nil
}
