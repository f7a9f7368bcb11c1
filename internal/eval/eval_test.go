package eval

import (
	"testing"

	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(endgame.NewRegistry())
}

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestEvaluateStartPositionBalanced(t *testing.T) {
	ev := newTestEvaluator()
	pos := mustParse(t, board.StartFEN)
	if got := ev.Evaluate(pos); got != 0 {
		t.Errorf("start position = %d, want 0", got)
	}
}

func TestEvaluateSpecializedOverride(t *testing.T) {
	ev := newTestEvaluator()

	pos := mustParse(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !ev.Probe(pos).Specialized() {
		t.Fatal("KRK record not specialized")
	}
	if got := ev.Evaluate(pos); got <= endgame.KnownWinValue {
		t.Errorf("KRK = %d, want above the known-win bound", got)
	}

	// Same position from the defender's perspective.
	flipped := mustParse(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if got := ev.Evaluate(flipped); got >= -endgame.KnownWinValue {
		t.Errorf("KRK for the defender = %d, want far below zero", got)
	}
}

func TestEvaluateDrawScaleErasesEdge(t *testing.T) {
	ev := newTestEvaluator()

	// KNK: a material edge the draw scale wipes out entirely (the phase
	// is fully endgame, so only the scaled term survives).
	pos := mustParse(t, "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1")
	e := ev.Probe(pos)
	if e.Specialized() {
		t.Fatal("KNK misclassified as specialized")
	}
	if got := ev.Evaluate(pos); got != 0 {
		t.Errorf("KNK = %d, want 0 after draw scaling", got)
	}
}

func TestEvaluateMaterialEdgeSurvives(t *testing.T) {
	ev := newTestEvaluator()

	// Rooks and pawns on both sides, White a clean rook up: nothing
	// drawish applies and the score stays solidly positive.
	pos := mustParse(t, "4k3/pppp4/8/8/8/8/PPPP4/R2RK3 w - - 0 1")
	if got := ev.Evaluate(pos); got < board.RookValueEg/2 {
		t.Errorf("rook-up position = %d, want a large positive score", got)
	}

	// The same score is symmetric for the side to move.
	flipped := mustParse(t, "4k3/pppp4/8/8/8/8/PPPP4/R2RK3 b - - 0 1")
	if got, want := ev.Evaluate(flipped), -ev.Evaluate(pos); got != want {
		t.Errorf("defender's score = %d, want %d", got, want)
	}
}

func TestEvaluateWorkerOwnership(t *testing.T) {
	// Two evaluators over one shared registry must agree from their
	// independent caches.
	reg := endgame.NewRegistry()
	a, b := NewEvaluator(reg), NewEvaluator(reg)

	for _, fen := range []string{
		board.StartFEN,
		"4k3/7r/8/8/8/8/8/2B1KB1N w - - 0 1",
		"4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
	} {
		pos := mustParse(t, fen)
		if av, bv := a.Evaluate(pos), b.Evaluate(pos); av != bv {
			t.Errorf("%s: evaluators disagree: %d vs %d", fen, av, bv)
		}
	}
}
