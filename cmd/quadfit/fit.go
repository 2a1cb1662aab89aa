package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"honnef.co/go/quadfit"
	"honnef.co/go/quadfit/internal/pointio"
)

type fitFlags struct {
	settings
	config      string
	inputFormat string
	output      string
	samples     int
	precision   int
	minify      bool
	margin      float64
	verbose     bool
}

func newFitCmd() *cobra.Command {
	var f fitFlags
	def := defaultSettings()

	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Fit curves to a point sequence",
		Long: `Fit reads points from file, or from standard input if file is omitted or
"-", and writes the fitted curves to standard output.

Input is text (pairs of numbers), JSON, YAML, or GeoJSON, chosen by the
file extension or --input-format. Settings from --config are overridden by
flags given explicitly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, args, &f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.MinSegmentLen, "min", def.MinSegmentLen, "minimum number of points per segment")
	flags.IntVar(&f.MaxSegmentLen, "max", def.MaxSegmentLen, "maximum number of points per segment")
	flags.Float64Var(&f.MaxError, "max-error", def.MaxError, "maximum error per segment")
	flags.StringVar(&f.Policy, "policy", def.Policy, "max error policy: advisory or strict")
	flags.StringVar(&f.Parametrization, "param", def.Parametrization, "parametrization: chord or uniform")
	flags.StringVar(&f.Metric, "metric", def.Metric, "error metric: max, rms, or nearest")
	flags.IntVar(&f.Workers, "workers", 0, "number of goroutines computing segment costs (0 for GOMAXPROCS)")
	flags.StringVar(&f.config, "config", "", "YAML file with fit settings")
	flags.StringVar(&f.inputFormat, "input-format", "", "input format: text, json, yaml, or geojson (default from file extension)")
	flags.StringVarP(&f.output, "output", "o", "svg", "output: svg, svgdoc, json, control, or samples")
	flags.IntVar(&f.samples, "samples", 20, "points per segment for --output samples")
	flags.IntVar(&f.precision, "precision", quadfit.DefaultSVGOptions.Precision, "decimals in SVG output (0 for shortest)")
	flags.BoolVar(&f.minify, "minify", false, "shorten numbers in SVG output")
	flags.Float64Var(&f.margin, "margin", 1, "space around the curves in --output svgdoc")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to the console")
	return cmd
}

func runFit(cmd *cobra.Command, args []string, f *fitFlags) error {
	s := defaultSettings()
	if f.config != "" {
		if err := loadSettings(f.config, &s); err != nil {
			return err
		}
	}
	s.override(cmd.Flags(), f.settings)
	cfg, opts, err := s.fitParams()
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	format := pointio.FormatFromPath(path)
	if f.inputFormat != "" {
		if format, err = pointio.ParseFormat(f.inputFormat); err != nil {
			return err
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}
	points, err := pointio.Read(r, format)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var logger l.Wrapper
	if f.verbose {
		logger = l.NewConsoleLoggerWrapper()
		opts.Logger = logger
	}
	res, err := quadfit.FitWithOptions(points, cfg, opts)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.WithFields(
			l.IntField("segments", res.NumSegments),
			l.StringField("totalError", strconv.FormatFloat(res.TotalError, 'g', -1, 64)),
			l.StringField("config", cfg.String()),
		).Info("fit complete")
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	if err := writeResult(w, res, f); err != nil {
		return err
	}
	return w.Flush()
}

func writeResult(w *bufio.Writer, res *quadfit.FitResult, f *fitFlags) error {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch f.output {
	case "svg":
		if err := res.WriteSVG(w, quadfit.SVGOptions{Precision: f.precision, Minify: f.minify}); err != nil {
			return err
		}
		w.WriteByte('\n')
	case "svgdoc":
		return res.WriteSVGDocument(w, quadfit.SVGOptions{Precision: f.precision, Minify: f.minify}, f.margin)
	case "json":
		s, err := res.JSON()
		if err != nil {
			return err
		}
		w.WriteString(s)
		w.WriteByte('\n')
	case "control":
		for _, cps := range res.ControlPoints() {
			fmt.Fprintf(w, "%s %s %s %s %s %s\n",
				num(cps[0].X), num(cps[0].Y), num(cps[1].X), num(cps[1].Y), num(cps[2].X), num(cps[2].Y))
		}
	case "samples":
		if f.samples <= 0 {
			return fmt.Errorf("--samples must be positive, got %d", f.samples)
		}
		for pt := range res.Sample(f.samples) {
			fmt.Fprintf(w, "%s %s\n", num(pt.X), num(pt.Y))
		}
	default:
		return fmt.Errorf("unknown output %q", f.output)
	}
	return nil
}
