// Package lottery implements the deterministic weighted draw. Compute is a
// pure function of (seed, options, votes); every consumer of a revealed
// seed can re-run it and must arrive at the identical outcome.
package lottery

import (
	"errors"
	"math"

	"github.com/wheelparty/chaoswheel/internal/models"
	"github.com/wheelparty/chaoswheel/internal/rng"
)

// ErrNoOptions is returned when the option list is empty
var ErrNoOptions = errors.New("no options to draw from")

// Modifiers is the chaos modifier catalog. The order is part of the audit
// contract: a seed selects a modifier by index, so reordering or growing
// this list changes historical outcomes.
var Modifiers = [4]models.Modifier{
	models.ModifierDoubleDown,
	models.ModifierLucky7,
	models.ModifierSabotageLowSteals,
	models.ModifierHotStreakNerf,
}

// Input holds the committed inputs of a draw
type Input struct {
	// Seed is the revealed seed string
	Seed string

	// OptionIDs are the room's option IDs in their fixed display order
	OptionIDs []string

	// VoteCounts maps option ID to vote count; missing entries count as zero
	VoteCounts map[string]int
}

// Outcome is the result of a draw
type Outcome struct {
	// Modifier is the chaos modifier drawn from the catalog
	Modifier models.Modifier

	// Weights is the final weight vector, in option order, after the
	// modifier was applied
	Weights []int

	// WinnerOptionID is the winning option
	WinnerOptionID string

	// WinnerIndex is the winner's position in OptionIDs
	WinnerIndex int
}

// Compute runs the draw. It is side-effect-free and fully reproducible:
// the same input always yields the same outcome.
func Compute(input Input) (*Outcome, error) {
	if len(input.OptionIDs) == 0 {
		return nil, ErrNoOptions
	}

	stream := rng.New(input.Seed)

	weights := make([]int, len(input.OptionIDs))
	for i, id := range input.OptionIDs {
		weights[i] = 1 + input.VoteCounts[id]
	}

	modifier := Modifiers[stream.Intn(len(Modifiers))]
	weights = applyModifier(modifier, stream, weights)

	winner := pickWeighted(stream, weights)

	return &Outcome{
		Modifier:       modifier,
		Weights:        weights,
		WinnerOptionID: input.OptionIDs[winner],
		WinnerIndex:    winner,
	}, nil
}

func applyModifier(modifier models.Modifier, stream *rng.Stream, weights []int) []int {
	w := make([]int, len(weights))
	copy(w, weights)

	max := w[0]
	min := w[0]
	for _, v := range w {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	switch modifier {
	case models.ModifierDoubleDown:
		for i, v := range w {
			if v == max {
				w[i] = v * 2
			}
		}

	case models.ModifierLucky7:
		idx := stream.Intn(len(w))
		w[idx] += 7

	case models.ModifierSabotageLowSteals:
		var lowIndices []int
		for i, v := range w {
			if v == min {
				lowIndices = append(lowIndices, i)
			}
		}
		low := lowIndices[stream.Intn(len(lowIndices))]

		stolen := 0
		for i, v := range w {
			if i == low {
				continue
			}
			take := int(math.Floor(float64(v) * 0.18))
			if take < 0 {
				take = 0
			}
			if v-take < 1 {
				w[i] = 1
			} else {
				w[i] = v - take
			}
			stolen += take
		}
		if stolen < 2 {
			stolen = 2
		}
		w[low] += stolen

	case models.ModifierHotStreakNerf:
		for i, v := range w {
			if v == max {
				nerfed := int(math.Floor(float64(v)*0.7 + 0.5))
				if nerfed < 1 {
					nerfed = 1
				}
				w[i] = nerfed
			}
		}
	}

	return w
}

// pickWeighted scales one draw by the weight total and walks the options in
// order, subtracting each weight until the remainder drops to zero or below.
func pickWeighted(stream *rng.Stream, weights []int) int {
	total := 0
	for _, v := range weights {
		total += v
	}
	if total <= 0 {
		return 0
	}

	r := stream.Float64() * float64(total)
	for i, v := range weights {
		r -= float64(v)
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}
