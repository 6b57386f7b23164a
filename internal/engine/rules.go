// Package engine provides move generation, legality checking, reversible
// move application and perft enumeration on the padded mailbox board.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/yauche-go/internal/errors"
)

// Rules selects how strictly king safety is enforced. The zero value is the
// reference behaviour; StandardRules gives standard chess.
type Rules struct {
	// KingContact counts an adjacent enemy king as an attacker.
	KingContact bool

	// CastleSafety forbids castling out of check and across an attacked
	// square. Without it only the king's landing square is tested.
	CastleSafety bool

	// MoverOnly makes the legality filter test only the moving side's king.
	// When false the filter uses Validate, which rejects a position where
	// any king is attacked, so moves that give check are discarded too.
	MoverOnly bool
}

// Rule set names accepted by ParseRules.
const (
	StandardRulesName  = "standard"
	ReferenceRulesName = "reference"
)

// StandardRules returns the rule set that matches standard chess and the
// published perft tables.
func StandardRules() Rules {
	return Rules{KingContact: true, CastleSafety: true, MoverOnly: true}
}

// ReferenceRules returns the rule set of the reference engine, which
// omits king contact, castle transit checks and mover-only validation.
func ReferenceRules() Rules {
	return Rules{}
}

// ParseRules resolves a rule set name.
func ParseRules(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StandardRulesName:
		return StandardRules(), nil
	case ReferenceRulesName:
		return ReferenceRules(), nil
	default:
		return Rules{}, fmt.Errorf("rules %q: %w", name, errors.ErrInvalidConfig)
	}
}

// String returns the rule set name, or a flag listing for custom sets.
func (r Rules) String() string {
	switch r {
	case StandardRules():
		return StandardRulesName
	case ReferenceRules():
		return ReferenceRulesName
	}
	return fmt.Sprintf("custom(kingContact=%t, castleSafety=%t, moverOnly=%t)",
		r.KingContact, r.CastleSafety, r.MoverOnly)
}
