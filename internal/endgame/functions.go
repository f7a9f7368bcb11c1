package endgame

import "github.com/hailam/materialeval/internal/board"

// Bonus tables steering the winning king toward the defender and the
// defending king toward the board edge or a mating corner.
var pushToEdges = [64]int{
	100, 90, 80, 70, 70, 80, 90, 100,
	90, 70, 60, 50, 50, 60, 70, 90,
	80, 60, 40, 30, 30, 40, 60, 80,
	70, 50, 30, 20, 20, 30, 50, 70,
	70, 50, 30, 20, 20, 30, 50, 70,
	80, 60, 40, 30, 30, 40, 60, 80,
	90, 70, 60, 50, 50, 60, 70, 90,
	100, 90, 80, 70, 70, 80, 90, 100,
}

// Oriented toward the a1/h8 corners; KBNK flips files first so the corners
// match the bishop's square color.
var pushToCorners = [64]int{
	200, 190, 180, 170, 160, 150, 140, 130,
	190, 180, 170, 160, 150, 140, 130, 140,
	180, 170, 155, 140, 140, 125, 140, 150,
	170, 160, 140, 120, 110, 140, 150, 160,
	160, 150, 140, 110, 120, 140, 160, 170,
	150, 140, 125, 140, 140, 155, 170, 180,
	140, 130, 140, 150, 160, 170, 180, 190,
	130, 140, 150, 160, 170, 180, 190, 200,
}

var pushClose = [8]int{0, 0, 100, 80, 60, 40, 20, 10}
var pushAway = [8]int{0, 5, 20, 40, 60, 80, 90, 100}

// Used by the KRPPKRP fortress rule, indexed by the most advanced pawn's
// relative rank.
var krppkrpScale = [8]int{0, 9, 10, 14, 21, 44, 0, 0}

// signed converts a score from the strong side's point of view to the side
// to move's.
func signed(pos *board.Position, strong board.Color, v int) int {
	if pos.SideToMove == strong {
		return v
	}
	return -v
}

// sameDiagonal returns true if two squares share a diagonal.
func sameDiagonal(a, b board.Square) bool {
	return board.FileDistance(a, b) == board.RankDistance(a, b)
}

// normalized maps a square onto the white point of view for the given strong
// side, optionally mirrored so a reference pawn sits on files a-d.
func normalized(sq board.Square, strong board.Color, flipFile bool) board.Square {
	sq = sq.RelativeTo(strong)
	if flipFile {
		sq = sq.FlipFile()
	}
	return sq
}

// kxk evaluates king plus overwhelming material vs a lone king: drive the
// defending king to the edge and the attacking king close.
func kxk(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	wk := pos.KingSquare[strong]
	bk := pos.KingSquare[weak]

	result := pos.NonPawnMaterial(strong) +
		pos.Count(strong, board.Pawn)*board.PawnValueEg +
		pushToEdges[bk] +
		pushClose[board.Distance(wk, bk)]

	if pos.Count(strong, board.Queen) > 0 ||
		pos.Count(strong, board.Rook) > 0 ||
		pos.Count(strong, board.Bishop) > 1 ||
		(pos.Count(strong, board.Bishop) > 0 && pos.Count(strong, board.Knight) > 0) {
		result += KnownWinValue
	}

	return signed(pos, strong, result)
}

// kpkWin is a heuristic stand-in for a KPK bitbase: rule of the square plus
// a king-escort rule. Squares are normalized (white frame, pawn on files
// a-d). Clearly drawn fortress positions return false; unclear positions
// lean toward the defender.
func kpkWin(wk, bk, p board.Square, strongToMove bool) bool {
	queening := board.NewSquare(p.File(), 7)

	// Rule of the square: the defender cannot catch the runner.
	push := 7 - p.Rank()
	if p.Rank() == 1 {
		push--
	}
	tempo := 0
	if !strongToMove {
		tempo = 1
	}
	if board.Distance(bk, queening)-tempo > push {
		return true
	}

	// Rook pawn: the defender holds the corner.
	if p.File() == 0 && board.Distance(bk, board.A8) <= 1 {
		return false
	}

	// The attacking king escorts the pawn from in front.
	if p.File() != 0 &&
		wk.Rank() > p.Rank() &&
		board.FileDistance(wk, p) <= 1 &&
		wk.Rank() >= bk.Rank() &&
		(p.Rank() >= 4 || wk.Rank() > p.Rank()+1) {
		return true
	}

	return false
}

func kpkEval(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	flip := pos.PieceSquare(strong, board.Pawn).RelativeTo(strong).File() >= 4
	p := normalized(pos.PieceSquare(strong, board.Pawn), strong, flip)
	wk := normalized(pos.KingSquare[strong], strong, flip)
	bk := normalized(pos.KingSquare[weak], strong, flip)

	if !kpkWin(wk, bk, p, pos.SideToMove == strong) {
		return 0
	}

	result := KnownWinValue + board.PawnValueEg + p.Rank()
	return signed(pos, strong, result)
}

// knnk: two knights cannot force mate.
func knnk(pos *board.Position, strong board.Color) int {
	return 0
}

// kbnk mates in the corner of the bishop's color.
func kbnk(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	wk := pos.KingSquare[strong]
	bk := pos.KingSquare[weak]

	if !pos.PieceSquare(strong, board.Bishop).IsDark() {
		wk = wk.FlipFile()
		bk = bk.FlipFile()
	}

	result := KnownWinValue +
		pushClose[board.Distance(wk, bk)] +
		pushToCorners[bk]

	return signed(pos, strong, result)
}

// krkp: rook vs pawn, judged in the frame where the defender's pawn runs
// toward rank 1.
func krkp(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	wk := pos.KingSquare[strong].RelativeTo(strong)
	bk := pos.KingSquare[weak].RelativeTo(strong)
	r := pos.PieceSquare(strong, board.Rook).RelativeTo(strong)
	p := pos.PieceSquare(weak, board.Pawn).RelativeTo(strong)

	queening := board.NewSquare(p.File(), 0)
	block := p
	if p.Rank() > 0 {
		block = p - 8 // square in front of the running pawn
	}

	weakTempo := 0
	if pos.SideToMove == weak {
		weakTempo = 1
	}
	strongTempo := 0
	if pos.SideToMove == strong {
		strongTempo = 1
	}

	var result int
	switch {
	// The strong king is on the pawn's path.
	case wk.File() == p.File() && wk.Rank() < p.Rank():
		result = board.RookValueEg - board.Distance(wk, p)

	// The defending king is too far from both pawn and rook.
	case board.Distance(bk, p) >= 3+weakTempo && board.Distance(bk, r) >= 3:
		result = board.RookValueEg - board.Distance(wk, p)

	// Pawn far advanced and supported by its king: drawish.
	case bk.Rank() <= 2 && board.Distance(bk, p) == 1 &&
		wk.Rank() >= 3 && board.Distance(wk, p) > 2+strongTempo:
		result = 80 - 8*board.Distance(wk, p)

	default:
		result = 200 - 8*(board.Distance(wk, block)-
			board.Distance(bk, block)-
			board.Distance(p, queening))
	}

	return signed(pos, strong, result)
}

// krkb is a draw; just nudge the defender away from the center.
func krkb(pos *board.Position, strong board.Color) int {
	return signed(pos, strong, pushToEdges[pos.KingSquare[strong.Other()]])
}

// krkn: drawish unless the defending king and knight get separated.
func krkn(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	bk := pos.KingSquare[weak]
	n := pos.PieceSquare(weak, board.Knight)
	result := pushToEdges[bk] + pushAway[board.Distance(bk, n)]
	return signed(pos, strong, result)
}

// kqkp: a win unless the pawn is on its seventh rank on a drawing file with
// king support.
func kqkp(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	wk := pos.KingSquare[strong].RelativeTo(strong)
	bk := pos.KingSquare[weak].RelativeTo(strong)
	p := pos.PieceSquare(weak, board.Pawn).RelativeTo(strong)

	result := pushClose[board.Distance(wk, bk)]

	drawFile := p.File() == 0 || p.File() == 2 || p.File() == 5 || p.File() == 7
	if p.Rank() != 1 || board.Distance(bk, p) != 1 || !drawFile {
		result += board.QueenValueEg - board.PawnValueEg
	}

	return signed(pos, strong, result)
}

func kqkr(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	wk := pos.KingSquare[strong]
	bk := pos.KingSquare[weak]

	result := board.QueenValueEg - board.RookValueEg +
		pushToEdges[bk] +
		pushClose[board.Distance(wk, bk)]

	return signed(pos, strong, result)
}

// kbpsk: bishop and pawns all on one rook file with the wrong bishop and the
// defending king on the queening corner is a draw.
func kbpsk(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	pawns := pos.Pieces[strong][board.Pawn]
	pawnFile := pawns.LSB().File()

	if (pawnFile == 0 || pawnFile == 7) && pawns&^board.FileMask[pawnFile] == 0 {
		bishop := pos.PieceSquare(strong, board.Bishop)
		queening := board.NewSquare(pawnFile, 7).RelativeTo(strong)
		king := pos.KingSquare[weak]

		if queening.IsDark() != bishop.IsDark() && board.Distance(queening, king) <= 1 {
			return ScaleDraw
		}
	}

	return ScaleNone
}

// kqkrps: a rook on its third rank defended by a pawn next to the king is a
// known fortress against the queen.
func kqkrps(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	king := pos.KingSquare[weak]
	rook := pos.PieceSquare(weak, board.Rook)

	if king.RelativeRank(weak) <= 1 &&
		pos.KingSquare[strong].RelativeRank(weak) >= 3 &&
		rook.RelativeRank(weak) == 2 &&
		pos.Pieces[weak][board.Pawn]&board.KingAttacks(king)&board.PawnAttacks(strong, rook) != 0 {
		return ScaleDraw
	}

	return ScaleNone
}

// kpsk: pawns all on one rook file blocked by the defending king cannot make
// progress.
func kpsk(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	king := pos.KingSquare[weak]
	pawns := pos.Pieces[strong][board.Pawn]

	if pawns&^board.FileA == 0 || pawns&^board.FileH == 0 {
		allBlocked := pawns&^board.ForwardRanks(weak, king) == 0
		if allBlocked && board.FileDistance(king, pawns.LSB()) <= 1 {
			return ScaleDraw
		}
	}

	return ScaleNone
}

// kpkp, judged for the assigned strong side: a far advanced non-rook pawn
// probably wins; otherwise fall back on the KPK heuristic.
func kpkp(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	flip := pos.PieceSquare(strong, board.Pawn).RelativeTo(strong).File() >= 4
	p := normalized(pos.PieceSquare(strong, board.Pawn), strong, flip)
	wk := normalized(pos.KingSquare[strong], strong, flip)
	bk := normalized(pos.KingSquare[weak], strong, flip)

	if p.Rank() >= 4 && p.File() != 0 {
		return ScaleNone
	}

	if kpkWin(wk, bk, p, pos.SideToMove == strong) {
		return ScaleNone
	}

	return ScaleDraw
}

// knpk: the rook pawn on its seventh with the defender in the corner cannot
// be dislodged by a knight.
func knpk(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	flip := pos.PieceSquare(strong, board.Pawn).RelativeTo(strong).File() >= 4
	p := normalized(pos.PieceSquare(strong, board.Pawn), strong, flip)
	bk := normalized(pos.KingSquare[weak], strong, flip)

	if p == board.A7 && board.Distance(board.A8, bk) <= 1 {
		return ScaleDraw
	}

	return ScaleNone
}

// knpkb: a bishop eyeing the pawn's path holds; scale by how close the
// defending king is.
func knpkb(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	p := pos.PieceSquare(strong, board.Pawn)
	bishop := pos.PieceSquare(weak, board.Bishop)
	king := pos.KingSquare[weak]

	up := 8
	if strong == board.Black {
		up = -8
	}
	for sq := int(p) + up; sq >= 0 && sq < 64; sq += up {
		if sameDiagonal(bishop, board.Square(sq)) {
			return board.Distance(king, p)
		}
	}

	return ScaleNone
}

// kbpkb: king-block on the wrong square color, or opposite-colored bishops
// with the pawn not far advanced, is a draw.
func kbpkb(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	p := pos.PieceSquare(strong, board.Pawn)
	bishop := pos.PieceSquare(strong, board.Bishop)
	weakBishop := pos.PieceSquare(weak, board.Bishop)
	king := pos.KingSquare[weak]

	blocking := king.File() == p.File() && king.RelativeRank(strong) > p.RelativeRank(strong)
	if blocking && king.IsDark() != bishop.IsDark() {
		return ScaleDraw
	}

	if weakBishop.IsDark() != bishop.IsDark() && p.RelativeRank(strong) <= 4 {
		return ScaleDraw
	}

	return ScaleNone
}

// kbpkn: the defending king planted on the pawn's path on a square the
// bishop cannot attack is a draw.
func kbpkn(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	p := pos.PieceSquare(strong, board.Pawn)
	bishop := pos.PieceSquare(strong, board.Bishop)
	king := pos.KingSquare[weak]

	if king.File() == p.File() &&
		king.RelativeRank(strong) > p.RelativeRank(strong) &&
		king.IsDark() != bishop.IsDark() {
		return ScaleDraw
	}

	return ScaleNone
}

// krpkr: defender parked on the queening square with the pawn still far back
// is the book draw.
func krpkr(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	p := pos.PieceSquare(strong, board.Pawn)
	king := pos.KingSquare[weak]
	queening := board.NewSquare(p.File(), 7).RelativeTo(strong)

	if board.Distance(king, queening) <= 1 && p.RelativeRank(strong) <= 4 {
		return ScaleDraw
	}

	return ScaleNone
}

// passedPawn returns true if no enemy pawn stands on the pawn's file or an
// adjacent file ahead of it.
func passedPawn(pos *board.Position, c board.Color, sq board.Square) bool {
	span := board.FileMask[sq.File()]
	if sq.File() > 0 {
		span |= board.FileMask[sq.File()-1]
	}
	if sq.File() < 7 {
		span |= board.FileMask[sq.File()+1]
	}
	span &= board.ForwardRanks(c, sq)
	return pos.Pieces[c.Other()][board.Pawn]&span == 0
}

// krppkrp: with no passed pawn and the defending king in front of both
// pawns, winning chances shrink with the pawns' advancement.
func krppkrp(pos *board.Position, strong board.Color) int {
	weak := strong.Other()
	pawns := pos.Pieces[strong][board.Pawn]
	p1 := pawns.PopLSB()
	p2 := pawns.LSB()
	king := pos.KingSquare[weak]

	if passedPawn(pos, strong, p1) || passedPawn(pos, strong, p2) {
		return ScaleNone
	}

	r := max(p1.RelativeRank(strong), p2.RelativeRank(strong))
	if board.FileDistance(king, p1) <= 1 &&
		board.FileDistance(king, p2) <= 1 &&
		king.RelativeRank(strong) > r {
		return krppkrpScale[r]
	}

	return ScaleNone
}
