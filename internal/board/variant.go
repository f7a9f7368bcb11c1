package board

import "fmt"

// Variant selects the active rule set. The antichess variant (compulsory
// capture, no royal king) uses its own imbalance coefficients with an axis
// extended through the king, and material keys for the two variants never
// collide.
type Variant uint8

const (
	VariantStandard Variant = iota
	VariantAntichess
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantAntichess:
		return "antichess"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name as used on the command line.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard", "":
		return VariantStandard, nil
	case "antichess", "anti":
		return VariantAntichess, nil
	}
	return VariantStandard, fmt.Errorf("unknown variant: %s", s)
}
