// Package eval is the evaluation pipeline sitting on top of the material
// cache: tapered material plus the imbalance term, damped by the record's
// scale factor, or a specialized endgame evaluation when one applies.
package eval

import (
	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
	"github.com/hailam/materialeval/internal/material"
)

// DefaultCacheMB is the material cache size given to each worker.
const DefaultCacheMB = 8

// Evaluator owns one private material cache. It is not safe for concurrent
// use: construct one Evaluator per worker and share only the registry.
type Evaluator struct {
	material *material.Table
}

// NewEvaluator creates an evaluator with its own material cache over the
// shared endgame registry.
func NewEvaluator(endgames *endgame.Registry) *Evaluator {
	return &Evaluator{
		material: material.NewTable(DefaultCacheMB, endgames),
	}
}

// Probe exposes the underlying material record for callers that want the
// classification rather than a blended score.
func (e *Evaluator) Probe(pos *board.Position) *material.Entry {
	return e.material.Probe(pos)
}

// Evaluate returns the score in centipawns from the side to move's point of
// view.
func (e *Evaluator) Evaluate(pos *board.Position) int {
	me := e.material.Probe(pos)

	if me.Specialized() {
		return me.Evaluate(pos)
	}

	mg := me.Value()
	eg := me.Value()
	for pt := board.Pawn; pt < board.King; pt++ {
		n := pos.Count(board.White, pt) - pos.Count(board.Black, pt)
		mg += n * board.PieceValueMg[pt]
		eg += n * board.PieceValueEg[pt]
	}

	// Scale the endgame term by the leading side's factor.
	strong := board.White
	if eg < 0 {
		strong = board.Black
	}
	eg = eg * me.ScaleFactor(pos, strong) / endgame.ScaleNormal

	phase := me.GamePhase()
	v := (mg*phase + eg*(board.PhaseMidgame-phase)) / board.PhaseMidgame

	if pos.SideToMove == board.Black {
		v = -v
	}
	return v
}
