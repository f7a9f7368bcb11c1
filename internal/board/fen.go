package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a standard-variant Position. Castling,
// en passant and move counters are accepted but ignored; the material
// evaluator has no use for them.
func ParseFEN(fen string) (*Position, error) {
	return ParseFENVariant(fen, VariantStandard)
}

// ParseFENVariant parses a FEN string under the given rule variant.
func ParseFENVariant(fen string, v Variant) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	pos := &Position{Variant: v}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	pos.MaterialKey = MaterialKeyFromCounts(&pos.counts, v)

	return pos, nil
}

// parsePiecePlacement fills the bitboards and counts from FEN field 0.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid FEN: expected 8 ranks, got %d", len(ranks))
	}

	for rankIdx, rankStr := range ranks {
		rank := 7 - rankIdx // FEN starts at rank 8
		file := 0

		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			if file > 7 {
				return fmt.Errorf("invalid FEN: rank %d overflows", rank+1)
			}

			c := White
			lower := ch
			if ch >= 'a' && ch <= 'z' {
				c = Black
			} else {
				lower = ch + 'a' - 'A'
			}

			var pt PieceType
			switch lower {
			case 'p':
				pt = Pawn
			case 'n':
				pt = Knight
			case 'b':
				pt = Bishop
			case 'r':
				pt = Rook
			case 'q':
				pt = Queen
			case 'k':
				pt = King
			default:
				return fmt.Errorf("invalid FEN: unknown piece %q", ch)
			}

			pos.put(c, pt, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid FEN: rank %d has %d files", rank+1, file)
		}
	}

	return nil
}
