package endgame

import (
	"testing"

	"github.com/hailam/materialeval/internal/board"
)

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestKXKDrivesDefenderToEdge(t *testing.T) {
	center := mustParse(t, "8/8/8/4k3/8/8/8/Q3K3 w - - 0 1")
	corner := mustParse(t, "7k/8/8/8/8/8/8/Q3K3 w - - 0 1")

	ev := KXK(board.White)
	if c, e := ev.Evaluate(center), ev.Evaluate(corner); c >= e {
		t.Errorf("centralized defender scored %d, cornered %d; want cornered higher", c, e)
	}
}

func TestKXKSideToMoveSign(t *testing.T) {
	white := mustParse(t, "7k/8/8/8/8/8/8/Q3K3 w - - 0 1")
	black := mustParse(t, "7k/8/8/8/8/8/8/Q3K3 b - - 0 1")

	ev := KXK(board.White)
	w, b := ev.Evaluate(white), ev.Evaluate(black)
	if w <= 0 || b >= 0 || w != -b {
		t.Errorf("scores %d (white to move) and %d (black to move); want exact negation", w, b)
	}
}

func TestKXKKnownWin(t *testing.T) {
	rook := mustParse(t, "7k/8/8/8/8/8/8/R3K3 w - - 0 1")
	if got := KXK(board.White).Evaluate(rook); got <= KnownWinValue {
		t.Errorf("KRK = %d, want above the known-win bound", got)
	}

	// A lone knight cannot mate; the bonus must stay off. (The material
	// classifier never sends KNK here, but the function's own guard is
	// what keeps KXK honest for pawn-heavy configurations.)
	knight := mustParse(t, "7k/8/8/8/8/8/8/N3K3 w - - 0 1")
	if got := KXK(board.White).Evaluate(knight); got >= KnownWinValue {
		t.Errorf("KNK = %d, want below the known-win bound", got)
	}
}

func TestKNNKIsDraw(t *testing.T) {
	pos := mustParse(t, "7k/8/8/8/8/8/8/NN2K3 w - - 0 1")
	if got := knnk(pos, board.White); got != 0 {
		t.Errorf("KNNK = %d, want 0", got)
	}
}

func TestKBNKCorner(t *testing.T) {
	// Defender in the bishop's corner vs the wrong corner: the right
	// corner must score higher for the attacker.
	right := mustParse(t, "7k/8/8/8/8/8/8/B1N1K3 w - - 0 1") // dark bishop a1, mate corner h8
	wrong := mustParse(t, "k7/8/8/8/8/8/8/B1N1K3 w - - 0 1")

	if r, w := kbnk(right, board.White), kbnk(wrong, board.White); r <= w {
		t.Errorf("right corner %d, wrong corner %d; want right higher", r, w)
	}
}

func TestKQKRFavorsQueen(t *testing.T) {
	pos := mustParse(t, "4k3/7r/8/8/8/8/8/Q3K3 w - - 0 1")
	got := kqkr(pos, board.White)
	if got < board.QueenValueEg-board.RookValueEg {
		t.Errorf("KQKR = %d, want at least the material difference", got)
	}
}

func TestKQKPDrawingFiles(t *testing.T) {
	// Rook pawn on its seventh, defended by the king: no win bonus.
	fortress := mustParse(t, "8/8/8/8/8/1k6/p7/3QK3 w - - 0 1")
	drawish := kqkp(fortress, board.White)
	if drawish >= board.QueenValueEg-board.PawnValueEg {
		t.Errorf("corner-pawn fortress = %d, want below the material edge", drawish)
	}

	// A central pawn in the same shape is lost for the defender.
	lost := mustParse(t, "8/8/8/8/8/3k4/3p4/Q3K3 w - - 0 1")
	if got := kqkp(lost, board.White); got < board.QueenValueEg-board.PawnValueEg {
		t.Errorf("central pawn = %d, want the full material edge", got)
	}
}

func TestKPKRuleOfTheSquare(t *testing.T) {
	// Defender hopelessly far from the runner.
	win := mustParse(t, "7k/8/8/8/1P6/8/8/K7 w - - 0 1")
	if got := kpkEval(win, board.White); got <= KnownWinValue {
		t.Errorf("runaway pawn = %d, want a known win", got)
	}

	// Rook pawn with the defending king in the corner is dead drawn.
	draw := mustParse(t, "k7/8/8/8/P7/8/8/4K3 w - - 0 1")
	if got := kpkEval(draw, board.White); got != 0 {
		t.Errorf("corner defense = %d, want 0", got)
	}
}

func TestKRKPRace(t *testing.T) {
	// Defending king far from both its pawn and the rook: the rook wins.
	pos := mustParse(t, "7k/8/8/8/3p4/8/8/KR6 w - - 0 1")
	if got := krkp(pos, board.White); got <= 0 {
		t.Errorf("KRKP with a distant defender = %d, want positive", got)
	}
}

func TestKBPsKWrongBishop(t *testing.T) {
	// Light bishop, a-pawns, black king on a8: the queening square a8 is
	// light... choose the dark bishop so the corner is the wrong color.
	hold := mustParse(t, "k7/8/8/8/P7/P7/8/2B1K3 w - - 0 1") // c1 bishop is dark, a8 light
	if got := kbpsk(hold, board.White); got != ScaleDraw {
		t.Errorf("wrong-bishop corner = %d, want draw scale", got)
	}

	// Right bishop: no verdict, fall through to the entry's factor.
	push := mustParse(t, "k7/8/8/8/P7/P7/8/3BK3 w - - 0 1") // d1 bishop is light
	if got := kbpsk(push, board.White); got != ScaleNone {
		t.Errorf("right bishop = %d, want no verdict", got)
	}

	// Pawns on two files: the rule does not apply at all.
	spread := mustParse(t, "k7/8/8/8/P7/1P6/8/2B1K3 w - - 0 1")
	if got := kbpsk(spread, board.White); got != ScaleNone {
		t.Errorf("spread pawns = %d, want no verdict", got)
	}
}

func TestKPsKBlockedRookFile(t *testing.T) {
	blocked := mustParse(t, "8/8/k7/8/P7/P7/8/4K3 w - - 0 1")
	if got := kpsk(blocked, board.White); got != ScaleDraw {
		t.Errorf("blocked rook-file pawns = %d, want draw scale", got)
	}

	center := mustParse(t, "8/8/3k4/8/3P4/3P4/8/4K3 w - - 0 1")
	if got := kpsk(center, board.White); got != ScaleNone {
		t.Errorf("center pawns = %d, want no verdict", got)
	}
}

func TestKQKRPsFortress(t *testing.T) {
	// Black king g8, rook f6 (third rank from Black's side) defended by
	// the g7 pawn which also touches the king: the fortress holds.
	pos := mustParse(t, "6k1/6p1/5r2/8/8/8/3K4/3Q4 w - - 0 1")
	if got := kqkrps(pos, board.White); got != ScaleDraw {
		t.Errorf("fortress = %d, want draw scale", got)
	}

	// Undefended rook: no fortress.
	loose := mustParse(t, "6k1/6p1/8/5r2/8/8/3K4/3Q4 w - - 0 1")
	if got := kqkrps(loose, board.White); got != ScaleNone {
		t.Errorf("loose rook = %d, want no verdict", got)
	}
}

func TestKRPKRQueeningSquareDefense(t *testing.T) {
	held := mustParse(t, "3k4/8/8/8/3P4/8/8/R3K2r w - - 0 1")
	if got := krpkr(held, board.White); got != ScaleDraw {
		t.Errorf("defender on the queening square = %d, want draw scale", got)
	}

	cut := mustParse(t, "7k/8/8/8/3P4/8/8/R3K2r w - - 0 1")
	if got := krpkr(cut, board.White); got != ScaleNone {
		t.Errorf("cut-off defender = %d, want no verdict", got)
	}
}

func TestKBPKBOppositeColors(t *testing.T) {
	// Opposite-colored bishops, pawn on its fourth rank: drawn.
	pos := mustParse(t, "3k4/5b2/8/8/3P4/8/8/2B1K3 w - - 0 1")
	if got := kbpkb(pos, board.White); got != ScaleDraw {
		t.Errorf("opposite bishops = %d, want draw scale", got)
	}
}

func TestKNPKCornerPawn(t *testing.T) {
	pos := mustParse(t, "k7/P7/8/8/8/8/8/N3K3 w - - 0 1")
	if got := knpk(pos, board.White); got != ScaleDraw {
		t.Errorf("a7 pawn with cornered defender = %d, want draw scale", got)
	}

	free := mustParse(t, "7k/P7/8/8/8/8/8/N3K3 w - - 0 1")
	if got := knpk(free, board.White); got != ScaleNone {
		t.Errorf("defender away from the corner = %d, want no verdict", got)
	}
}
