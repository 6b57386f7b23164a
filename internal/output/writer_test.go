package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/processing"
	"github.com/lgbarn/yauche-go/internal/suite"
)

func replay(t *testing.T, line string) *engine.Position {
	t.Helper()
	pos, err := engine.ReplayMoves(engine.StandardRules(), engine.SplitMoves(line))
	if err != nil {
		t.Fatalf("ReplayMoves(%q): %v", line, err)
	}
	return pos
}

// TestTextWriter_WritePosition verifies the text position report
func TestTextWriter_WritePosition(t *testing.T) {
	pos := replay(t, "f2f3 e7e5 g2g4 d8h4")
	report := NewPositionReport("run-1", pos, true)
	report.Board = ""
	report.AddPlyCount(pos)

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WritePosition(report); err != nil {
		t.Fatalf("WritePosition: %v", err)
	}

	want := "Moves: f2f3 e7e5 g2g4 d8h4\n" +
		"White to move (checkmate)\n" +
		"Plies: 4\n" +
		"Legal moves (0): \n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextWriter_WritePositionBoard(t *testing.T) {
	pos := engine.NewPosition(engine.StandardRules())
	report := NewPositionReport("run-1", pos, false)

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WritePosition(report); err != nil {
		t.Fatalf("WritePosition: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜\n") {
		t.Errorf("board should lead the report, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "White to move\n") {
		t.Errorf("report should end with the side to move, got:\n%s", got)
	}
	if strings.Contains(got, "Legal moves") {
		t.Error("legal moves listed without being requested")
	}
}

func TestTextWriter_WritePerft(t *testing.T) {
	report := &PerftReport{
		RunID:   "run-2",
		Rules:   "standard",
		Depth:   1,
		Nodes:   3,
		Divide:  map[string]uint64{"g1f3": 1, "a2a3": 1, "e2e4": 1},
		Elapsed: time.Second,
	}

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WritePerft(report); err != nil {
		t.Fatalf("WritePerft: %v", err)
	}

	want := "a2a3: 1\ne2e4: 1\ng1f3: 1\n\nperft(1) = 3\nrules standard, 1s, 3 nodes/s, run run-2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextWriter_WriteSuite(t *testing.T) {
	cases := suite.Cases()[:3]
	report := &SuiteReport{
		RunID: "run-3",
		Rules: "standard",
		Results: []suite.Result{
			{Case: cases[0], Nodes: 20},
			{Case: cases[1], Nodes: 399},
			{Case: cases[2], Err: errors.New("boom")},
		},
	}

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WriteSuite(report); err != nil {
		t.Fatalf("WriteSuite: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"ok", "FAIL want 400", "error: boom", "1/3 passed"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if report.Passed() {
		t.Error("report with failures should not pass")
	}
}

// TestJSONWriter_Document verifies the JSON document collects every report
func TestJSONWriter_Document(t *testing.T) {
	pos := replay(t, "e2e4")
	report := NewPositionReport("run-4", pos, true)
	report.AddHashKey(pos)
	analysis, err := processing.AnalyzeLine(pos.Rules, []string{"e2e4"})
	if err != nil {
		t.Fatal(err)
	}
	report.Analysis = NewAnalysisReport(analysis)

	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	if err := w.WritePosition(report); err != nil {
		t.Fatalf("WritePosition: %v", err)
	}
	if err := w.WritePerft(&PerftReport{RunID: "run-4", Rules: "standard", Depth: 1, Nodes: 20}); err != nil {
		t.Fatalf("WritePerft: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("JSON writer should buffer until Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if doc.RunID != "run-4" || doc.Rules != "standard" {
		t.Errorf("stamp = %q/%q; want run-4/standard", doc.RunID, doc.Rules)
	}
	if doc.Position == nil || doc.Perft == nil {
		t.Fatalf("missing sections: %+v", doc)
	}
	if got := len(doc.Position.Board); got != 8 {
		t.Errorf("board rows = %d; want 8", got)
	}
	if got := len(doc.Position.LegalMoves); got != 20 {
		t.Errorf("legal moves = %d; want 20", got)
	}
	if len(doc.Position.Key) != 16 {
		t.Errorf("key = %q; want 16 hex digits", doc.Position.Key)
	}
	if doc.Position.Analysis == nil || doc.Position.Analysis.HalfmoveClock != 0 {
		t.Errorf("analysis = %+v", doc.Position.Analysis)
	}
	if doc.Perft.Nodes != 20 {
		t.Errorf("perft nodes = %d; want 20", doc.Perft.Nodes)
	}
}

func TestJSONWriter_Suite(t *testing.T) {
	c := suite.Cases()[0]
	report := &SuiteReport{
		RunID:   "run-5",
		Rules:   "standard",
		Results: []suite.Result{{Case: c, Nodes: c.Nodes, Elapsed: time.Second}},
	}

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	if err := w.WriteSuite(report); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := []JSONSuiteCase{{
		Name:          c.Name,
		Depth:         c.Depth,
		Expected:      c.Nodes,
		Nodes:         c.Nodes,
		Passed:        true,
		ElapsedMillis: 1000,
	}}
	if diff := cmp.Diff(want, doc.Suite); diff != "" {
		t.Errorf("suite mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteValidation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"valid", "d2d4 d7d5", "valid: 2 plies, rules standard, run run-6\n"},
		{"illegal", "d2d4 d7d5 d4d5", `invalid at ply 3: ply 3, move "d4d5": illegal move, rules standard, run run-6` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := engine.SplitMoves(tt.line)
			res := processing.ValidateLine(engine.StandardRules(), moves)
			report := NewValidationReport("run-6", "standard", moves, res)

			var buf bytes.Buffer
			if err := NewTextWriter(&buf).WriteValidation(report); err != nil {
				t.Fatalf("WriteValidation: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}

			buf.Reset()
			w := NewJSONWriter(&buf)
			if err := w.WriteValidation(report); err != nil {
				t.Fatalf("WriteValidation: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			var doc JSONOutput
			if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("bad JSON: %v", err)
			}
			want := &JSONValidation{
				Moves:    moves,
				Plies:    len(moves),
				Valid:    res.Valid,
				ErrorPly: res.ErrorPly,
				Error:    res.ErrorMsg,
			}
			if diff := cmp.Diff(want, doc.Validation); diff != "" {
				t.Errorf("validation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("run IDs should be unique")
	}
	if len(a) != 36 {
		t.Errorf("run ID %q is not a UUID", a)
	}
}

func TestPerftReport_NodesPerSecond(t *testing.T) {
	r := &PerftReport{Nodes: 1000}
	if r.NodesPerSecond() != 0 {
		t.Error("zero elapsed should report 0 nodes/s")
	}
	r.Elapsed = 500 * time.Millisecond
	if r.NodesPerSecond() != 2000 {
		t.Errorf("NodesPerSecond() = %d; want 2000", r.NodesPerSecond())
	}
}

func TestWriter_Interface(t *testing.T) {
	var _ ReportWriter = NewTextWriter(nil)
	var _ ReportWriter = NewJSONWriter(nil)
}
