package endgame

import (
	"fmt"
	"strings"

	"github.com/hailam/materialeval/internal/board"
)

// Registry maps material hash keys to the specialized functions registered
// for exact material configurations. Read-only after NewRegistry returns.
type Registry struct {
	evalFuncs  map[uint64]EvalFunc
	scaleFuncs map[uint64]ScaleFunc
}

// NewRegistry builds the registry of hand-registered endings. Each piece
// code is registered for both strong-side colors. Generic families (KXK,
// KBPsK, KQKRPs, KPsK, KPKP) are not here: they cover more than one
// material key and are picked by the classifier instead.
func NewRegistry() *Registry {
	r := &Registry{
		evalFuncs:  make(map[uint64]EvalFunc),
		scaleFuncs: make(map[uint64]ScaleFunc),
	}

	r.addEval("KPK", kpkEval)
	r.addEval("KNNK", knnk)
	r.addEval("KBNK", kbnk)
	r.addEval("KRKP", krkp)
	r.addEval("KRKB", krkb)
	r.addEval("KRKN", krkn)
	r.addEval("KQKP", kqkp)
	r.addEval("KQKR", kqkr)

	r.addScale("KNPK", knpk)
	r.addScale("KNPKB", knpkb)
	r.addScale("KBPKB", kbpkb)
	r.addScale("KBPKN", kbpkn)
	r.addScale("KRPKR", krpkr)
	r.addScale("KRPPKRP", krppkrp)

	return r
}

func (r *Registry) addEval(code string, fn func(*board.Position, board.Color) int) {
	for c := board.White; c <= board.Black; c++ {
		r.evalFuncs[keyFromCode(code, c)] = &evaluator{c, fn}
	}
}

func (r *Registry) addScale(code string, fn func(*board.Position, board.Color) int) {
	for c := board.White; c <= board.Black; c++ {
		r.scaleFuncs[keyFromCode(code, c)] = &scaler{c, fn}
	}
}

// ProbeEvaluation returns the specialized evaluation function registered for
// the material key, or nil.
func (r *Registry) ProbeEvaluation(key uint64) EvalFunc {
	return r.evalFuncs[key]
}

// ProbeScaling returns the specialized scaling function registered for the
// material key, or nil.
func (r *Registry) ProbeScaling(key uint64) ScaleFunc {
	return r.scaleFuncs[key]
}

// keyFromCode computes the material key of a piece code like "KRPKR": the
// letters up to the second K belong to the strong side, the rest to the
// defender. Registered keys are standard-variant by construction.
func keyFromCode(code string, strong board.Color) uint64 {
	split := strings.Index(code[1:], "K") + 1
	if split < 1 {
		panic(fmt.Sprintf("endgame: bad piece code %q", code))
	}

	var counts [2][6]int
	weak := strong.Other()
	for i, ch := range code {
		c := strong
		if i >= split {
			c = weak
		}
		switch ch {
		case 'K':
			counts[c][board.King]++
		case 'Q':
			counts[c][board.Queen]++
		case 'R':
			counts[c][board.Rook]++
		case 'B':
			counts[c][board.Bishop]++
		case 'N':
			counts[c][board.Knight]++
		case 'P':
			counts[c][board.Pawn]++
		default:
			panic(fmt.Sprintf("endgame: bad piece code %q", code))
		}
	}

	return board.MaterialKeyFromCounts(&counts, board.VariantStandard)
}

// Code builds the key for a piece code with the given strong side. Exposed
// for tests and tooling; the probe path never parses codes.
func Code(code string, strong board.Color) uint64 {
	return keyFromCode(code, strong)
}
