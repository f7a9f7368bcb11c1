package board

// Position carries the slice of board state the material evaluator and the
// specialized endgame functions consume. There is no move generation, no
// legality and no check detection here; the surrounding system owns those.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// Piece counts, kept alongside the bitboards so the hot material path
	// never recounts bits: [Color][PieceType]
	counts [2][6]int

	// Game state
	SideToMove Color
	Variant    Variant

	// King positions (cached; in antichess this is the first king seen)
	KingSquare [2]Square

	// Material hash key, placement-independent, variant included
	MaterialKey uint64
}

// Game phase bounds: total non-pawn material is clamped to
// [phaseEndgameLimit, phaseMidgameLimit] and mapped linearly onto
// [0, PhaseMidgame].
const (
	PhaseMidgame = 128

	phaseMidgameLimit = 15258
	phaseEndgameLimit = 3915
)

// Count returns the number of pieces of the given color and type.
func (p *Position) Count(c Color, pt PieceType) int {
	return p.counts[c][pt]
}

// TotalCount returns the number of pieces of the given color, king included.
func (p *Position) TotalCount(c Color) int {
	n := 0
	for pt := Pawn; pt <= King; pt++ {
		n += p.counts[c][pt]
	}
	return n
}

// NonPawnMaterial returns the total middlegame value of the given color's
// pieces, pawns and king excluded.
func (p *Position) NonPawnMaterial(c Color) int {
	npm := 0
	for pt := Knight; pt <= Queen; pt++ {
		npm += p.counts[c][pt] * PieceValueMg[pt]
	}
	return npm
}

// GamePhase returns the game progress measure in [0, PhaseMidgame], where
// PhaseMidgame means all pieces still on the board.
func (p *Position) GamePhase() int {
	npm := p.NonPawnMaterial(White) + p.NonPawnMaterial(Black)
	if npm > phaseMidgameLimit {
		npm = phaseMidgameLimit
	}
	if npm < phaseEndgameLimit {
		npm = phaseEndgameLimit
	}
	return (npm - phaseEndgameLimit) * PhaseMidgame / (phaseMidgameLimit - phaseEndgameLimit)
}

// PieceSquare returns the square of the first piece of the given color and
// type, or NoSquare if there is none. Intended for endings where the type is
// known to occur at most once.
func (p *Position) PieceSquare(c Color, pt PieceType) Square {
	return p.Pieces[c][pt].LSB()
}

// put places a piece during FEN parsing and keeps the derived state in sync.
func (p *Position) put(c Color, pt PieceType, sq Square) {
	p.Pieces[c][pt] = p.Pieces[c][pt].Set(sq)
	p.counts[c][pt]++
	if pt == King && p.KingSquare[c] == NoSquare {
		p.KingSquare[c] = sq
	}
}
