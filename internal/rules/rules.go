package rules

import (
	"math/rand/v2"

	"github.com/mvikstrom/chromalife/internal/cell"
)

// Variant identifies which transition table applies to a cell for one
// generation.
type Variant int

const (
	// VariantCustom applies the color-aware rules.
	VariantCustom Variant = iota
	// VariantOriginal applies the monochrome Conway rules.
	VariantOriginal
	// VariantRandom applies a fully random outcome.
	VariantRandom
)

func (v Variant) String() string {
	switch v {
	case VariantCustom:
		return "custom"
	case VariantOriginal:
		return "original"
	case VariantRandom:
		return "random"
	}
	return "unknown"
}

// PickVariant draws the rule variant for one cell. With chaos disabled it is
// deterministic and consumes no randomness: the custom rules always apply.
// With chaos enabled the random-outcome draw happens first, then the
// custom-vs-original draw.
func PickVariant(c ChaosConfig, rng *rand.Rand) Variant {
	if !c.Enabled {
		return VariantCustom
	}
	if rng.Float64() < c.RandomOutcomeProb {
		return VariantRandom
	}
	if rng.Float64() < c.CustomRuleProb {
		return VariantCustom
	}
	return VariantOriginal
}

// Apply runs the selected variant's transition for a single cell.
func Apply(v Variant, cur cell.State, tally cell.Tally, rng *rand.Rand) cell.State {
	switch v {
	case VariantOriginal:
		return Original(cur, tally)
	case VariantRandom:
		return RandomOutcome(cur, rng)
	default:
		return Custom(cur, tally, rng)
	}
}

// Original applies the monochrome Conway rules. Color is ignored for the
// live/die decision and preserved on survival; births take the dominant
// neighbor color.
func Original(cur cell.State, tally cell.Tally) cell.State {
	total := tally.Total()
	if cur.Alive() {
		if total == 2 || total == 3 {
			return cur
		}
		return cell.Dead
	}
	if total == 3 {
		return birthColor(tally)
	}
	return cell.Dead
}

// Custom applies the color-aware rules. Overcrowded cells (5+ neighbors) face
// a single 60% death draw before any survival branch; cells with 4+ neighbors
// survive as the dominant color only when one color musters at least 3
// neighbors; a lone neighbor sustains the cell only when it shares its color.
func Custom(cur cell.State, tally cell.Tally, rng *rand.Rand) cell.State {
	total := tally.Total()
	if cur.Alive() {
		if total >= 5 && rng.Float64() < 0.6 {
			return cell.Dead
		}
		switch {
		case total == 2 || total == 3:
			return cur
		case total >= 4:
			if tally.Max() >= 3 {
				if dom := tally.Dominant(); dom.Alive() {
					return dom
				}
				return cur
			}
			return cell.Dead
		case total == 1:
			if tally[cur] == 1 {
				return cur
			}
			return cell.Dead
		default:
			return cell.Dead
		}
	}
	if total == 3 {
		return birthColor(tally)
	}
	return cell.Dead
}

// RandomOutcome ignores the neighborhood entirely. Live cells die with
// probability 0.4, survive unchanged with 0.3, and otherwise switch to a
// random color; dead cells spontaneously come alive with probability 0.1.
func RandomOutcome(cur cell.State, rng *rand.Rand) cell.State {
	if cur.Alive() {
		u := rng.Float64()
		switch {
		case u < 0.4:
			return cell.Dead
		case u < 0.7:
			return cur
		default:
			return RandomColor(rng)
		}
	}
	if rng.Float64() < 0.1 {
		return RandomColor(rng)
	}
	return cell.Dead
}

// RandomColor picks a uniformly random living color.
func RandomColor(rng *rand.Rand) cell.State {
	return cell.Colors[rng.IntN(len(cell.Colors))]
}

func birthColor(tally cell.Tally) cell.State {
	if dom := tally.Dominant(); dom.Alive() {
		return dom
	}
	return cell.Red
}
