package material

import (
	"fmt"

	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
)

// Drawish scale factors for a pawnless material edge of at most a bishop,
// tuned empirically alongside the imbalance coefficients.
const (
	scaleLowMaterial = 4  // opponent has at most a bishop too
	scaleMajorBehind = 14 // opponent keeps real material behind
)

// Table is a direct-mapped material cache. One probe per node makes this the
// hottest table in the system, so a slot is simply overwritten on key
// mismatch: no chaining, no eviction policy, no locks. Each search worker
// must own a private Table; the shared registry is read-only.
type Table struct {
	entries  []Entry
	mask     uint64
	endgames *endgame.Registry
}

// NewTable creates a material cache with the given size in MB, rounded down
// to a power of two entries.
func NewTable(sizeMB int, endgames *endgame.Registry) *Table {
	entrySize := 64 // close enough to sizeof(Entry) with interface headers
	numEntries := sizeMB * 1024 * 1024 / entrySize

	size := 1
	for size*2 <= numEntries {
		size *= 2
	}

	return &Table{
		entries:  make([]Entry, size),
		mask:     uint64(size - 1),
		endgames: endgames,
	}
}

// Probe looks up the position's material configuration. On a hit the stored
// entry is returned unmodified; on a miss (first use or slot collision) the
// full record is recomputed in place. The returned pointer stays valid until
// the next miss on the same slot.
func (t *Table) Probe(pos *board.Position) *Entry {
	key := pos.MaterialKey
	e := &t.entries[key&t.mask]
	if e.key == key {
		return e
	}

	*e = Entry{
		key:       key,
		gamePhase: pos.GamePhase(),
		factor:    [2]uint8{endgame.ScaleNormal, endgame.ScaleNormal},
	}

	// A specialized evaluation function replaces evaluation entirely:
	// first an exact-configuration one, then the generic KXK family.
	if ef := t.endgames.ProbeEvaluation(key); ef != nil {
		e.evalFunction = ef
		return e
	}

	npmWhite := pos.NonPawnMaterial(board.White)
	npmBlack := pos.NonPawnMaterial(board.Black)

	// Antichess has no royal king, so a parseable position may lack a
	// king on either side. Every rule in this block consults king
	// squares; the factor heuristics and the imbalance term below do not.
	if pos.KingSquare[board.White].IsValid() && pos.KingSquare[board.Black].IsValid() {
		for c := board.White; c <= board.Black; c++ {
			if isKXK(pos, c) {
				e.evalFunction = endgame.KXK(c)
				return e
			}
		}

		// No full override. An exact-configuration scaling function is
		// assigned to its strong side only; the generic rules still run
		// for the other side, and the factor heuristics for both.
		if sf := t.endgames.ProbeScaling(key); sf != nil {
			e.scalingFunction[sf.StrongSide()] = sf
		}

		// Generic scaling families cover more than one material
		// distribution, so classification continues after assigning them.
		for c := board.White; c <= board.Black; c++ {
			if e.scalingFunction[c] != nil {
				continue
			}
			if isKBPsK(pos, c) {
				e.scalingFunction[c] = endgame.KBPsK(c)
			} else if isKQKRPs(pos, c) {
				e.scalingFunction[c] = endgame.KQKRPs(c)
			}
		}

		if npmWhite+npmBlack == 0 && pos.Pieces[board.White][board.Pawn]|pos.Pieces[board.Black][board.Pawn] != 0 {
			whitePawns := pos.Count(board.White, board.Pawn)
			blackPawns := pos.Count(board.Black, board.Pawn)

			switch {
			case blackPawns == 0:
				assertPawnCount(pos, board.White, whitePawns)
				e.scalingFunction[board.White] = endgame.KPsK(board.White)

			case whitePawns == 0:
				assertPawnCount(pos, board.Black, blackPawns)
				e.scalingFunction[board.Black] = endgame.KPsK(board.Black)

			case whitePawns == 1 && blackPawns == 1:
				// The one case assigning the same family to both
				// sides from a single trigger.
				e.scalingFunction[board.White] = endgame.KPKP(board.White)
				e.scalingFunction[board.Black] = endgame.KPKP(board.Black)
			}
		}
	}

	// Zero or one pawn makes winning hard even with a small material
	// edge. This catches trivial draws like KK, KBK and KNK and damps
	// cases such as KRKBP. The one-pawn rule runs after the zero-pawn
	// branch so the more specific case wins.
	if pos.Count(board.White, board.Pawn) == 0 && npmWhite-npmBlack <= board.BishopValueMg {
		e.factor[board.White] = drawishFactor(npmWhite, npmBlack)
	}
	if pos.Count(board.Black, board.Pawn) == 0 && npmBlack-npmWhite <= board.BishopValueMg {
		e.factor[board.Black] = drawishFactor(npmBlack, npmWhite)
	}

	if pos.Count(board.White, board.Pawn) == 1 && npmWhite-npmBlack <= board.BishopValueMg {
		e.factor[board.White] = endgame.ScaleOnePawn
	}
	if pos.Count(board.Black, board.Pawn) == 1 && npmBlack-npmWhite <= board.BishopValueMg {
		e.factor[board.Black] = endgame.ScaleOnePawn
	}

	counts := imbalanceCounts(pos)
	e.value = int16((imbalance(board.White, &counts, pos.Variant) -
		imbalance(board.Black, &counts, pos.Variant)) / 16)

	return e
}

// drawishFactor grades a pawnless side by how much material is left on each
// side of the board.
func drawishFactor(npmUs, npmThem int) uint8 {
	switch {
	case npmUs < board.RookValueMg:
		return endgame.ScaleDraw
	case npmThem <= board.BishopValueMg:
		return scaleLowMaterial
	default:
		return scaleMajorBehind
	}
}

// assertPawnCount enforces the lone-pawns invariant: under standard rules a
// side classified as "only pawns vs bare king" must own at least two pawns,
// since the single-pawn case belongs to the KPK table. A violation is a
// modeling defect in the caller, not a runtime condition.
func assertPawnCount(pos *board.Position, c board.Color, pawns int) {
	if pos.Variant == board.VariantStandard && pawns < 2 {
		panic(fmt.Sprintf("material: %v has %d pawn(s) in a lone-pawns ending", c, pawns))
	}
}

// Helpers detecting the generic material distributions.

func isKXK(pos *board.Position, us board.Color) bool {
	return pos.TotalCount(us.Other()) == 1 &&
		pos.NonPawnMaterial(us) >= board.RookValueMg
}

func isKBPsK(pos *board.Position, us board.Color) bool {
	return pos.NonPawnMaterial(us) == board.BishopValueMg &&
		pos.Count(us, board.Bishop) == 1 &&
		pos.Count(us, board.Pawn) >= 1
}

func isKQKRPs(pos *board.Position, us board.Color) bool {
	them := us.Other()
	return pos.Count(us, board.Pawn) == 0 &&
		pos.NonPawnMaterial(us) == board.QueenValueMg &&
		pos.Count(us, board.Queen) == 1 &&
		pos.Count(them, board.Rook) == 1 &&
		pos.Count(them, board.Pawn) >= 1
}
