package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"glossconv/internal/config"
	"glossconv/internal/gloss"
	"glossconv/internal/media"
	"glossconv/internal/templates"
)

// Direction names a conversion.
type Direction int

const (
	// ToEAF converts a LaTeX document to an ELAN annotation document.
	ToEAF Direction = iota + 1
	// ToTeX converts an ELAN export or document to LaTeX.
	ToTeX
)

func (d Direction) String() string {
	switch d {
	case ToEAF:
		return "tex2eaf"
	case ToTeX:
		return "eaf2tex"
	}
	return "unknown"
}

// Ext returns the extension of the files the direction produces.
func (d Direction) Ext() string {
	if d == ToEAF {
		return ".eaf"
	}
	return ".tex"
}

// DirectionFor picks the conversion for an input file by its extension.
func DirectionFor(path string) (Direction, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tex":
		return ToEAF, true
	case ".txt", ".eaf":
		return ToTeX, true
	}
	return 0, false
}

// Options configures the worker.
type Options struct {
	InputPath  string
	OutputPath string
	Direction  Direction
	Config     *config.Config
	Templates  *templates.Cache
}

// OutputPathFor returns the default output path: the input with the other
// format's extension.
func OutputPathFor(inputPath string, d Direction) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + d.Ext()
}

// Run converts one file. Every call uses its own identifier counters.
func Run(ctx context.Context, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Direction == 0 {
		d, ok := DirectionFor(opts.InputPath)
		if !ok {
			return fmt.Errorf("unsupported input file: %s", opts.InputPath)
		}
		opts.Direction = d
	}
	output := opts.OutputPath
	if output == "" {
		output = OutputPathFor(opts.InputPath, opts.Direction)
	}

	slog.Info("processing file", "input", filepath.Base(opts.InputPath), "direction", opts.Direction.String())

	in, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	var buf bytes.Buffer
	switch opts.Direction {
	case ToEAF:
		err = texToEAF(ctx, in, &buf, output, opts.Config)
	case ToTeX:
		err = toTeX(in, &buf, filepath.Ext(opts.InputPath), opts.Config, opts.Templates)
	default:
		err = fmt.Errorf("unknown direction %d", opts.Direction)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", opts.InputPath, err)
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Info("file saved", "path", output)
	return nil
}

func texToEAF(ctx context.Context, r io.Reader, w io.Writer, outputPath string, cfg *config.Config) error {
	utterances, err := gloss.ReadTeX(r)
	if err != nil {
		return err
	}
	slog.Debug("parsed LaTeX blocks", "utterances", len(utterances))

	ew := &gloss.EAFWriter{Author: cfg.Author}
	if cfg.Media != "" {
		ew.Media, err = media.Descriptor(cfg.Media, outputPath)
		if err != nil {
			return err
		}
		media.CheckCoverage(ctx, cfg.Media, utterances)
	}
	return ew.WriteDocument(w, utterances)
}

func toTeX(r io.Reader, w io.Writer, ext string, cfg *config.Config, tc *templates.Cache) error {
	var (
		res *gloss.Result
		err error
	)
	if strings.EqualFold(ext, ".eaf") {
		res, err = gloss.ReadEAF(r)
	} else {
		res, err = gloss.ReadTab(r)
	}
	if err != nil {
		return err
	}
	if res.Dropped > 0 {
		slog.Warn("records dropped", "count", res.Dropped)
	}
	slog.Debug("fused utterances", "utterances", len(res.Utterances))

	tw, err := newTeXWriter(cfg, tc)
	if err != nil {
		return err
	}
	return tw.WriteDocument(w, res.Utterances)
}

func newTeXWriter(cfg *config.Config, tc *templates.Cache) (*gloss.TeXWriter, error) {
	if tc == nil {
		tc = templates.NewCache(cfg.TemplatesDir)
	}
	preamble, err := tc.Render(templates.Preamble, cfg.Metadata)
	if err != nil {
		return nil, err
	}
	subsection, err := tc.Render(templates.Subsection, cfg.Metadata)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(subsection, gloss.BlockMarker+"\n") {
		return nil, fmt.Errorf("subsection template must contain the line %q", gloss.BlockMarker)
	}
	return &gloss.TeXWriter{Preamble: preamble, Subsection: subsection}, nil
}
