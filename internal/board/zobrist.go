package board

// Material hash keys. The key of a configuration is the XOR of one key per
// piece actually owned, indexed by how many pieces of the same color and
// type precede it, XORed with a per-variant key. Placement never enters the
// hash, so two positions with identical piece counts always share a key.
// Uses a PRNG with a fixed seed for reproducibility.

// maxCount bounds the per-type piece count a key can represent (8 pawns plus
// promotions stay well below it).
const maxCount = 16

var (
	zobristMaterial [2][6][maxCount]uint64
	zobristVariant  [2]uint64
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x6C078965BD1E2F4A) // Fixed seed

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for n := 0; n < maxCount; n++ {
				zobristMaterial[c][pt][n] = rng.next()
			}
		}
	}

	zobristVariant[VariantStandard] = rng.next()
	zobristVariant[VariantAntichess] = rng.next()
}

// MaterialKeyFromCounts computes the material hash key for the given
// per-color, per-type piece counts under the given variant. The same
// function serves both positions parsed from FEN and endings registered by
// piece code, so the two always agree on keys.
func MaterialKeyFromCounts(counts *[2][6]int, v Variant) uint64 {
	key := zobristVariant[v]
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			n := counts[c][pt]
			if n > maxCount {
				n = maxCount
			}
			for i := 0; i < n; i++ {
				key ^= zobristMaterial[c][pt][i]
			}
		}
	}
	return key
}
