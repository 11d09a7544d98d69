// Package pipeline runs the per-line transformation: template parsing,
// highlighting, width formatting, streamed line by line.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dkoosis/hue/pkg/align"
	"github.com/dkoosis/hue/pkg/highlight"
	"github.com/dkoosis/hue/pkg/template"
)

// Options carries the per-run formatting configuration.
type Options struct {
	Width   int // 0 disables width formatting
	Align   align.Alignment
	NoColor bool
}

// Pipeline applies the fixed five-stage transformation to every line.
// All stages are decided at construction; nothing re-branches per line.
type Pipeline struct {
	parser *template.Parser
	engine *highlight.Engine
	opts   Options
}

// New wires a pipeline from a highlighting engine and options.
func New(engine *highlight.Engine, opts Options) *Pipeline {
	return &Pipeline{
		parser: template.NewParser(opts.NoColor),
		engine: engine,
		opts:   opts,
	}
}

// ProcessLine transforms one line through the ordered stages:
// templates (always, they define no-color stripping), highlighting
// (skipped entirely in no-color mode), then width formatting when a
// target width is set.
func (p *Pipeline) ProcessLine(line string) string {
	result := p.parser.Process(line)

	if !p.opts.NoColor {
		result = p.engine.Apply(result)
	}

	if p.opts.Width > 0 {
		result = align.Format(result, p.opts.Width, p.opts.Align)
	}

	return result
}

// flusher matches writers that buffer; the pipeline flushes after every
// line for pipe responsiveness.
type flusher interface {
	Flush() error
}

// Run streams r through the pipeline into w, one line at a time, each
// followed by a flush. Stops at EOF or context cancellation; any read
// or write failure is fatal and returned.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Allow long lines from verbose tools.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	f, _ := w.(flusher)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, p.ProcessLine(scanner.Text())); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if f != nil {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flushing output: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
