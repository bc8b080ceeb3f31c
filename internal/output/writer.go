package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// ReportWriter is the interface for writing perft reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg, writing to cfg.OutputFile.
func NewWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg)
}

// palette holds the colours used for result lines.
type palette struct {
	move  *color.Color
	count *color.Color
	total *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		move:  color.New(color.FgCyan),
		count: color.New(color.FgYellow),
		total: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.move, p.count, p.total} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// TextWriter writes reports as "move: nodes" lines and a total.
type TextWriter struct {
	w         io.Writer
	verbosity int
	printer   *message.Printer
	colours   *palette
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:         w,
		verbosity: cfg.Verbosity,
		printer:   message.NewPrinter(cfg.Output.Tag()),
		colours:   newPalette(cfg.Output.Colour),
	}
}

// WriteReport writes a report. At verbosity 0 only the bare total is written.
func (tw *TextWriter) WriteReport(r *Report) error {
	if tw.verbosity == 0 {
		_, err := fmt.Fprintln(tw.w, r.Total)
		return err
	}

	if len(r.Divide) > 0 {
		for _, e := range r.Divide {
			tw.colours.move.Fprint(tw.w, e.Move.String())
			fmt.Fprint(tw.w, ": ")
			tw.colours.count.Fprintln(tw.w, tw.printer.Sprintf("%d", e.Nodes))
		}
		fmt.Fprintln(tw.w)
	}
	_, err := tw.colours.total.Fprintln(tw.w, tw.printer.Sprintf("%s: %d", r.Label(), r.Total))
	return err
}

// JSONWriter writes each report as an indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport writes a report in JSON format.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}
