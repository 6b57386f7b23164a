package engine

import (
	"strings"

	"github.com/lgbarn/yauche-go/internal/chess"
)

// MoveTexts returns the coordinate text of each move, in order.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}

// SplitMoves splits a space or comma separated move list.
func SplitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
