package output

import (
	"encoding/json"
	"io"
)

// JSONPosition represents a position report in JSON format.
type JSONPosition struct {
	Moves      []string `json:"moves,omitempty"`
	ToMove     string   `json:"toMove"`
	Board      []string `json:"board"`
	InCheck    bool     `json:"inCheck"`
	Checkmate  bool     `json:"checkmate,omitempty"`
	Stalemate  bool     `json:"stalemate,omitempty"`
	LegalMoves []string `json:"legalMoves,omitempty"`
	Key        string   `json:"key,omitempty"`
	PlyCount   int      `json:"plyCount,omitempty"`

	Analysis *JSONAnalysis `json:"analysis,omitempty"`
}

// JSONAnalysis represents a line analysis in JSON format.
type JSONAnalysis struct {
	Captures             int    `json:"captures"`
	Checks               int    `json:"checks"`
	HalfmoveClock        int    `json:"halfmoveClock"`
	DistinctPositions    int    `json:"distinctPositions"`
	MostOccurrences      int    `json:"mostOccurrences"`
	Repetition           bool   `json:"repetition"`
	FiftyMoveRule        bool   `json:"fiftyMoveRule"`
	InsufficientMaterial bool   `json:"insufficientMaterial"`
	Underpromotion       bool   `json:"underpromotion"`
	Summary              string `json:"summary"`
}

// JSONPerft represents a perft report in JSON format.
type JSONPerft struct {
	Depth          int               `json:"depth"`
	Nodes          uint64            `json:"nodes"`
	Divide         map[string]uint64 `json:"divide,omitempty"`
	ElapsedMillis  int64             `json:"elapsedMs"`
	NodesPerSecond uint64            `json:"nodesPerSecond"`
	CacheHits      int               `json:"cacheHits,omitempty"`
}

// JSONSuiteCase represents one suite result in JSON format.
type JSONSuiteCase struct {
	Name          string   `json:"name"`
	Moves         []string `json:"moves,omitempty"`
	Depth         int      `json:"depth"`
	Expected      uint64   `json:"expected"`
	Nodes         uint64   `json:"nodes"`
	Passed        bool     `json:"passed"`
	Error         string   `json:"error,omitempty"`
	ElapsedMillis int64    `json:"elapsedMs"`
}

// JSONValidation represents a line validation in JSON format.
type JSONValidation struct {
	Moves    []string `json:"moves,omitempty"`
	Plies    int      `json:"plies"`
	Valid    bool     `json:"valid"`
	ErrorPly int      `json:"errorPly,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// JSONOutput is the single document written by a JSONWriter.
type JSONOutput struct {
	RunID      string          `json:"runId"`
	Rules      string          `json:"rules"`
	Position   *JSONPosition   `json:"position,omitempty"`
	Perft      *JSONPerft      `json:"perft,omitempty"`
	Suite      []JSONSuiteCase `json:"suite,omitempty"`
	Validation *JSONValidation `json:"validation,omitempty"`
}

// JSONWriter collects reports and writes them as one JSON document on Close.
type JSONWriter struct {
	w   io.Writer
	doc JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

func (jw *JSONWriter) stamp(runID, rules string) {
	if jw.doc.RunID == "" {
		jw.doc.RunID = runID
	}
	if jw.doc.Rules == "" {
		jw.doc.Rules = rules
	}
}

// WritePosition buffers a position report.
func (jw *JSONWriter) WritePosition(r *PositionReport) error {
	jw.stamp(r.RunID, r.Rules)
	jw.doc.Position = &JSONPosition{
		Moves:      r.Moves,
		ToMove:     r.ToMove,
		Board:      splitLines(r.Board),
		InCheck:    r.InCheck,
		Checkmate:  r.Checkmate,
		Stalemate:  r.Stalemate,
		LegalMoves: r.LegalMoves,
		Key:        r.Key,
		PlyCount:   r.PlyCount,
	}
	if a := r.Analysis; a != nil {
		jw.doc.Position.Analysis = &JSONAnalysis{
			Captures:             a.Captures,
			Checks:               a.Checks,
			HalfmoveClock:        a.HalfmoveClock,
			DistinctPositions:    a.DistinctPositions,
			MostOccurrences:      a.MostOccurrences,
			Repetition:           a.Repetition,
			FiftyMoveRule:        a.FiftyMoveRule,
			InsufficientMaterial: a.InsufficientMaterial,
			Underpromotion:       a.Underpromotion,
			Summary:              a.Summary,
		}
	}
	return nil
}

// WritePerft buffers a perft report.
func (jw *JSONWriter) WritePerft(r *PerftReport) error {
	jw.stamp(r.RunID, r.Rules)
	jw.doc.Perft = &JSONPerft{
		Depth:          r.Depth,
		Nodes:          r.Nodes,
		Divide:         r.Divide,
		ElapsedMillis:  r.Elapsed.Milliseconds(),
		NodesPerSecond: r.NodesPerSecond(),
		CacheHits:      r.CacheHits,
	}
	return nil
}

// WriteSuite buffers a suite report.
func (jw *JSONWriter) WriteSuite(r *SuiteReport) error {
	jw.stamp(r.RunID, r.Rules)
	for _, res := range r.Results {
		c := JSONSuiteCase{
			Name:          res.Case.Name,
			Moves:         res.Case.Moves,
			Depth:         res.Case.Depth,
			Expected:      res.Case.Nodes,
			Nodes:         res.Nodes,
			Passed:        res.Passed(),
			ElapsedMillis: res.Elapsed.Milliseconds(),
		}
		if res.Err != nil {
			c.Error = res.Err.Error()
		}
		jw.doc.Suite = append(jw.doc.Suite, c)
	}
	return nil
}

// WriteValidation buffers a validation report.
func (jw *JSONWriter) WriteValidation(r *ValidationReport) error {
	jw.stamp(r.RunID, r.Rules)
	jw.doc.Validation = &JSONValidation{
		Moves:    r.Moves,
		Plies:    len(r.Moves),
		Valid:    r.Valid,
		ErrorPly: r.ErrorPly,
		Error:    r.Error,
	}
	return nil
}

// Close writes the collected document.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jw.doc)
}

// splitLines splits rendered board text into its rows.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
