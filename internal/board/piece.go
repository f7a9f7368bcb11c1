// Package board implements the piece-count position representation consumed
// by the material evaluator: per-side piece counts, placement bitboards,
// non-pawn material totals, game phase and the material hash key.
package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// Middlegame piece values in centipawns. The material classifier compares
// non-pawn material totals against these, so the classification thresholds
// (rook, bishop, queen) must use the same constants.
const (
	PawnValueMg   = 188
	KnightValueMg = 753
	BishopValueMg = 826
	RookValueMg   = 1285
	QueenValueMg  = 2513
)

// Endgame piece values in centipawns.
const (
	PawnValueEg   = 248
	KnightValueEg = 832
	BishopValueEg = 897
	RookValueEg   = 1371
	QueenValueEg  = 2650
)

// PieceValueMg indexes the middlegame values by PieceType. Kings carry no
// material value.
var PieceValueMg = [6]int{PawnValueMg, KnightValueMg, BishopValueMg, RookValueMg, QueenValueMg, 0}

// PieceValueEg indexes the endgame values by PieceType.
var PieceValueEg = [6]int{PawnValueEg, KnightValueEg, BishopValueEg, RookValueEg, QueenValueEg, 0}
