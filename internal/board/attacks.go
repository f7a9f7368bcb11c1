package board

// Precomputed king and pawn attack tables. The material module has no move
// generator; these are only consulted by the specialized endgame functions
// when judging fortress-style defenses.
var (
	kingAttacks [64]Bitboard
	pawnAttacks [2][64]Bitboard
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		notA := bb & ^FileA
		notH := bb & ^FileH

		kingAttacks[sq] = notA<<7 | bb<<8 | notH<<9 |
			notA>>1 | notH<<1 |
			notA>>9 | bb>>8 | notH>>7

		pawnAttacks[White][sq] = notA<<7 | notH<<9
		pawnAttacks[Black][sq] = notA>>9 | notH>>7
	}
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}
