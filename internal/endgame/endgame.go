// Package endgame provides specialized evaluation and scaling functions for
// recognized material configurations, plus the registry mapping material
// hash keys to them. The registry is populated once at construction and is
// read-only afterwards, so it may be shared by any number of workers.
package endgame

import "github.com/hailam/materialeval/internal/board"

// Scale factors damp an evaluation score to reflect reduced winning chances.
// A score is multiplied by factor/ScaleNormal.
const (
	ScaleDraw    = 0
	ScaleOnePawn = 48
	ScaleNormal  = 64
	ScaleMax     = 128

	// ScaleNone is returned by a scaling function that declines to judge
	// the position; the caller falls back to the cached per-side factor.
	ScaleNone = 255
)

// KnownWinValue is added to positions that are winning regardless of the
// defender's play, keeping them ahead of any heuristic score.
const KnownWinValue = 10000

// EvalFunc is a specialized total-evaluation function for one material
// configuration. When the material record carries one, it replaces ordinary
// evaluation entirely. The returned score is from the side to move's point
// of view.
type EvalFunc interface {
	StrongSide() board.Color
	Evaluate(pos *board.Position) int
}

// ScaleFunc is a specialized scale-factor function, assigned to the strong
// side of one material configuration. It may consult full board state, not
// just counts.
type ScaleFunc interface {
	StrongSide() board.Color
	Scale(pos *board.Position) int
}

type evaluator struct {
	strong board.Color
	fn     func(*board.Position, board.Color) int
}

func (e *evaluator) StrongSide() board.Color { return e.strong }

func (e *evaluator) Evaluate(pos *board.Position) int { return e.fn(pos, e.strong) }

type scaler struct {
	strong board.Color
	fn     func(*board.Position, board.Color) int
}

func (s *scaler) StrongSide() board.Color { return s.strong }

func (s *scaler) Scale(pos *board.Position) int { return s.fn(pos, s.strong) }

// The generic families are shared, one instance per strong side, because
// they match more than one material key and are picked by the classifier
// rules rather than by registry lookup.
var (
	evaluateKXK [2]EvalFunc

	scaleKBPsK  [2]ScaleFunc
	scaleKQKRPs [2]ScaleFunc
	scaleKPsK   [2]ScaleFunc
	scaleKPKP   [2]ScaleFunc
)

func init() {
	for c := board.White; c <= board.Black; c++ {
		evaluateKXK[c] = &evaluator{c, kxk}

		scaleKBPsK[c] = &scaler{c, kbpsk}
		scaleKQKRPs[c] = &scaler{c, kqkrps}
		scaleKPsK[c] = &scaler{c, kpsk}
		scaleKPKP[c] = &scaler{c, kpkp}
	}
}

// KXK returns the generic king-plus-material vs lone king evaluator for the
// given strong side.
func KXK(strong board.Color) EvalFunc { return evaluateKXK[strong] }

// KBPsK returns the lone-bishop-plus-pawns scaler for the given strong side.
func KBPsK(strong board.Color) ScaleFunc { return scaleKBPsK[strong] }

// KQKRPs returns the queen vs rook-plus-pawns scaler for the given strong
// side.
func KQKRPs(strong board.Color) ScaleFunc { return scaleKQKRPs[strong] }

// KPsK returns the pawns vs lone king scaler for the given strong side.
func KPsK(strong board.Color) ScaleFunc { return scaleKPsK[strong] }

// KPKP returns the king-and-pawn vs king-and-pawn scaler for the given
// strong side.
func KPKP(strong board.Color) ScaleFunc { return scaleKPKP[strong] }
