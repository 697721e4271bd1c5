// Command crosspower computes the cross-power spectrum of two 3D density
// grids (or the auto-power spectrum of a single grid) stored in the flat
// binary grid format.
//
// Usage:
//
//	crosspower -config run.yaml [flags]
//
// The configuration file is YAML:
//
//	grid1: /data/grid1.dat
//	grid2: /data/grid2.dat
//	output: /data/spectrum.txt
//	ngrid: 512
//	boxsize: 50
//	bins: 256
//	window1: cic
//	window2: none
//	format: text
//
// Flags override individual configuration fields:
//
//	crosspower -config run.yaml -bins 128 -format csv
//	crosspower -config run.yaml -window1 ngp -window2 ngp
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-powerspec/config"
	"github.com/cwbudde/algo-powerspec/fourier"
	"github.com/cwbudde/algo-powerspec/grid"
	"github.com/cwbudde/algo-powerspec/spectrum"
	"github.com/cwbudde/algo-powerspec/window"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML run configuration (required)")
	bins := flag.Int("bins", 0, "override the number of radial bins")
	window1 := flag.String("window1", "", "override the grid 1 window scheme (none, ngp, cic)")
	window2 := flag.String("window2", "", "override the grid 2 window scheme (none, ngp, cic)")
	format := flag.String("format", "", "override the output format (text, csv)")
	contrast := flag.Bool("contrast", false, "convert grids to density contrast before transforming")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: crosspower -config run.yaml [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes the cross- or auto-power spectrum of gridded density fields.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crosspower: %v\n", err)
		os.Exit(1)
	}

	if *bins > 0 {
		cfg.Bins = *bins
	}
	if *window1 != "" {
		cfg.Window1 = *window1
	}
	if *window2 != "" {
		cfg.Window2 = *window2
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *contrast {
		cfg.Contrast = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "crosspower: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "crosspower: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	scheme1, scheme2, err := cfg.Schemes()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "reading grid 1: %s\n", cfg.Grid1)
	grid1, err := grid.Load(cfg.Grid1, cfg.NGrid, cfg.BoxSize)
	if err != nil {
		return err
	}

	grid2 := grid1
	if cfg.Grid2 != cfg.Grid1 {
		fmt.Fprintf(os.Stderr, "reading grid 2: %s\n", cfg.Grid2)
		grid2, err = grid.Load(cfg.Grid2, cfg.NGrid, cfg.BoxSize)
		if err != nil {
			return err
		}
	}

	if cfg.Contrast {
		same := grid2 == grid1
		if grid1, err = grid1.Contrast(); err != nil {
			return err
		}
		if same {
			grid2 = grid1
		} else if grid2, err = grid2.Contrast(); err != nil {
			return err
		}
	}

	plan, err := fourier.NewPlan(cfg.NGrid)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "transforming grid 1 (%d cells per side)\n", cfg.NGrid)
	spec1, err := plan.Transform(grid1)
	if err != nil {
		return err
	}

	spec2 := spec1
	if grid2 != grid1 || scheme2 != scheme1 {
		fmt.Fprintf(os.Stderr, "transforming grid 2\n")
		spec2, err = plan.Transform(grid2)
		if err != nil {
			return err
		}
	}

	if skipped, err := window.Correct(spec1, scheme1, window.DefaultOptions()); err != nil {
		return err
	} else if skipped > 0 {
		fmt.Fprintf(os.Stderr, "window %s on grid 1: %d cells near the kernel zero left uncorrected\n", scheme1, skipped)
	}
	if spec2 != spec1 {
		if skipped, err := window.Correct(spec2, scheme2, window.DefaultOptions()); err != nil {
			return err
		} else if skipped > 0 {
			fmt.Fprintf(os.Stderr, "window %s on grid 2: %d cells near the kernel zero left uncorrected\n", scheme2, skipped)
		}
	}

	fmt.Fprintf(os.Stderr, "binning into %d shells\n", cfg.Bins)
	table, err := spectrum.Cross(spec1, spec2, cfg.Bins)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	if cfg.Format == "csv" {
		err = table.WriteCSV(out)
	} else {
		err = table.WriteText(out)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	stats := spectrum.Calculate(table)
	fmt.Fprintf(os.Stderr, "wrote %d shells to %s (peak P=%.6g at k=%.6g, %g modes)\n",
		stats.Bins, cfg.Output, stats.Peak, stats.PeakK, stats.Modes)
	return nil
}
