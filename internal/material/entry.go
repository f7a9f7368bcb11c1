// Package material computes and caches the material evaluation record of a
// position: the polynomial imbalance bonus, the choice of specialized
// endgame evaluation or scaling functions, and heuristic draw-scaling
// factors for pawnless material distributions.
package material

import (
	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
)

// Entry is the cached material record for one material configuration. An
// entry is immutable once computed; its slot is overwritten in place when a
// probe with a different key lands on it.
type Entry struct {
	key             uint64
	value           int16
	gamePhase       int
	factor          [2]uint8
	evalFunction    endgame.EvalFunc
	scalingFunction [2]endgame.ScaleFunc
}

// Value returns the imbalance bonus, from White's point of view.
func (e *Entry) Value() int {
	return int(e.value)
}

// GamePhase returns the game progress measure copied from the position the
// entry was computed for.
func (e *Entry) GamePhase() int {
	return e.gamePhase
}

// Specialized returns true when the configuration has a specialized
// evaluation function replacing ordinary evaluation entirely.
func (e *Entry) Specialized() bool {
	return e.evalFunction != nil
}

// Evaluate runs the specialized evaluation function. Only valid when
// Specialized reports true.
func (e *Entry) Evaluate(pos *board.Position) int {
	return e.evalFunction.Evaluate(pos)
}

// ScaleFactor returns the scale factor for the given side: the specialized
// scaling function when one is assigned and willing to judge the position,
// otherwise the precomputed per-side factor.
func (e *Entry) ScaleFactor(pos *board.Position, c board.Color) int {
	if sf := e.scalingFunction[c]; sf != nil {
		if v := sf.Scale(pos); v != endgame.ScaleNone {
			return v
		}
	}
	return int(e.factor[c])
}
