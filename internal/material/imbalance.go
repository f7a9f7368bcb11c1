package material

import "github.com/hailam/materialeval/internal/board"

// imbalance computes the second-degree polynomial material imbalance for one
// side: each owned piece type contributes its count times a linear form over
// the counts of types up to and including itself, for both sides. The
// variant picks the coefficient pair and how far the type axis runs.
func imbalance(us board.Color, counts *[2][slotNb]int, variant board.Variant) int {
	them := us.Other()

	ours, theirs := &quadraticOurs, &quadraticTheirs
	lastSlot := queenSlot
	if variant == board.VariantAntichess {
		ours, theirs = &quadraticOursAnti, &quadraticTheirsAnti
		lastSlot = kingSlot
	}

	bonus := 0
	for pt1 := pairSlot; pt1 <= lastSlot; pt1++ {
		if counts[us][pt1] == 0 {
			continue
		}

		v := 0
		for pt2 := pairSlot; pt2 <= pt1; pt2++ {
			v += ours[pt1][pt2]*counts[us][pt2] + theirs[pt1][pt2]*counts[them][pt2]
		}

		bonus += counts[us][pt1] * v
	}

	return bonus
}

// imbalanceCounts builds the count vector on the imbalance type axis.
func imbalanceCounts(pos *board.Position) [2][slotNb]int {
	var counts [2][slotNb]int
	for c := board.White; c <= board.Black; c++ {
		if pos.Count(c, board.Bishop) > 1 {
			counts[c][pairSlot] = 1
		}
		counts[c][pawnSlot] = pos.Count(c, board.Pawn)
		counts[c][knightSlot] = pos.Count(c, board.Knight)
		counts[c][bishopSlot] = pos.Count(c, board.Bishop)
		counts[c][rookSlot] = pos.Count(c, board.Rook)
		counts[c][queenSlot] = pos.Count(c, board.Queen)
		counts[c][kingSlot] = pos.Count(c, board.King)
	}
	return counts
}
