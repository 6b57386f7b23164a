package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	WritePosition(r *PositionReport) error
	WritePerft(r *PerftReport) error
	WriteSuite(r *SuiteReport) error
	WriteValidation(r *ValidationReport) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns a JSON writer when jsonFormat is set, otherwise a text
// writer.
func NewWriter(w io.Writer, jsonFormat bool) ReportWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes human-readable reports as they arrive.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WritePosition writes the board and position summary.
func (tw *TextWriter) WritePosition(r *PositionReport) error {
	var sb strings.Builder
	if r.Board != "" {
		sb.WriteString(r.Board)
		sb.WriteByte('\n')
	}
	if len(r.Moves) > 0 {
		fmt.Fprintf(&sb, "Moves: %s\n", strings.Join(r.Moves, " "))
	}
	fmt.Fprintf(&sb, "%s to move", r.ToMove)
	switch {
	case r.Checkmate:
		sb.WriteString(" (checkmate)")
	case r.Stalemate:
		sb.WriteString(" (stalemate)")
	case r.InCheck:
		sb.WriteString(" (in check)")
	}
	sb.WriteByte('\n')
	if r.PlyCount > 0 {
		fmt.Fprintf(&sb, "Plies: %d\n", r.PlyCount)
	}
	if r.Key != "" {
		fmt.Fprintf(&sb, "Key: %s\n", r.Key)
	}
	if r.Analysis != nil {
		fmt.Fprintf(&sb, "Analysis: %s\n", r.Analysis.Summary)
	}
	if r.LegalMoves != nil {
		fmt.Fprintf(&sb, "Legal moves (%d): %s\n", len(r.LegalMoves), strings.Join(r.LegalMoves, " "))
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WritePerft writes the divide lines, if any, and the total.
func (tw *TextWriter) WritePerft(r *PerftReport) error {
	var sb strings.Builder
	for _, move := range r.DivideMoves() {
		fmt.Fprintf(&sb, "%s: %d\n", move, r.Divide[move])
	}
	if len(r.Divide) > 0 {
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "perft(%d) = %d\n", r.Depth, r.Nodes)
	fmt.Fprintf(&sb, "rules %s, %s, %d nodes/s, run %s\n",
		r.Rules, r.Elapsed.Round(time.Millisecond), r.NodesPerSecond(), r.RunID)
	if r.CacheHits > 0 {
		fmt.Fprintf(&sb, "table hits %d\n", r.CacheHits)
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteSuite writes one line per case and a summary.
func (tw *TextWriter) WriteSuite(r *SuiteReport) error {
	var sb strings.Builder
	passed := 0
	for _, res := range r.Results {
		status := "ok"
		switch {
		case res.Err != nil:
			status = "error: " + res.Err.Error()
		case !res.Passed():
			status = fmt.Sprintf("FAIL want %d", res.Case.Nodes)
		default:
			passed++
		}
		fmt.Fprintf(&sb, "%-12s depth %d  %12d  %s\n", res.Case.Name, res.Case.Depth, res.Nodes, status)
	}
	fmt.Fprintf(&sb, "\n%d/%d passed, rules %s, %s, run %s\n",
		passed, len(r.Results), r.Rules, r.Elapsed.Round(time.Millisecond), r.RunID)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteValidation writes one line: the verdict and the ply count, or the
// first illegal ply.
func (tw *TextWriter) WriteValidation(r *ValidationReport) error {
	var line string
	if r.Valid {
		line = fmt.Sprintf("valid: %d plies, rules %s, run %s\n", len(r.Moves), r.Rules, r.RunID)
	} else {
		line = fmt.Sprintf("invalid at ply %d: %s, rules %s, run %s\n", r.ErrorPly, r.Error, r.Rules, r.RunID)
	}
	_, err := io.WriteString(tw.w, line)
	return err
}

// Close is a no-op for text output.
func (tw *TextWriter) Close() error {
	return nil
}
