package lottery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelparty/chaoswheel/internal/models"
)

// Golden outcomes. These pin the generator, the modifier catalog order and
// the weighted walk all at once: any change to the draw machinery that
// alters historical outcomes fails here.
func TestComputeGoldenOutcomes(t *testing.T) {
	tests := []struct {
		seed       string
		optionIDs  []string
		voteCounts map[string]int

		wantModifier models.Modifier
		wantWeights  []int
		wantWinner   string
		wantIndex    int
	}{
		{
			seed:         "abc123",
			optionIDs:    []string{"X", "Y"},
			voteCounts:   map[string]int{"X": 3, "Y": 1},
			wantModifier: models.ModifierDoubleDown,
			wantWeights:  []int{8, 2},
			wantWinner:   "X",
			wantIndex:    0,
		},
		{
			seed:         "seed-one",
			optionIDs:    []string{"a", "b", "c"},
			voteCounts:   map[string]int{"b": 2, "c": 5},
			wantModifier: models.ModifierLucky7,
			wantWeights:  []int{1, 10, 6},
			wantWinner:   "b",
			wantIndex:    1,
		},
		{
			seed:         "party",
			optionIDs:    []string{"a", "b", "c", "d"},
			voteCounts:   map[string]int{},
			wantModifier: models.ModifierSabotageLowSteals,
			wantWeights:  []int{1, 3, 1, 1},
			wantWinner:   "d",
			wantIndex:    3,
		},
		{
			seed:         "ffffffff",
			optionIDs:    []string{"o1", "o2", "o3"},
			voteCounts:   map[string]int{"o1": 1, "o2": 1, "o3": 1},
			wantModifier: models.ModifierLucky7,
			wantWeights:  []int{2, 2, 9},
			wantWinner:   "o1",
			wantIndex:    0,
		},
		{
			seed:         "rematch-2",
			optionIDs:    []string{"x", "y"},
			voteCounts:   map[string]int{"y": 4},
			wantModifier: models.ModifierHotStreakNerf,
			wantWeights:  []int{1, 4},
			wantWinner:   "y",
			wantIndex:    1,
		},
		{
			seed:         "sabotage?",
			optionIDs:    []string{"p", "q", "r", "s"},
			voteCounts:   map[string]int{"p": 6, "q": 3, "r": 1, "s": 1},
			wantModifier: models.ModifierDoubleDown,
			wantWeights:  []int{14, 4, 2, 2},
			wantWinner:   "p",
			wantIndex:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			outcome, err := Compute(Input{
				Seed:       tt.seed,
				OptionIDs:  tt.optionIDs,
				VoteCounts: tt.voteCounts,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantModifier, outcome.Modifier)
			assert.Equal(t, tt.wantWeights, outcome.Weights)
			assert.Equal(t, tt.wantWinner, outcome.WinnerOptionID)
			assert.Equal(t, tt.wantIndex, outcome.WinnerIndex)
		})
	}
}

func TestComputeDeterminism(t *testing.T) {
	optionIDs := []string{"a", "b", "c", "d", "e"}
	voteCounts := map[string]int{"a": 2, "c": 7, "e": 1}

	for i := 0; i < 200; i++ {
		seed := fmt.Sprintf("determinism-seed-%d", i)

		first, err := Compute(Input{Seed: seed, OptionIDs: optionIDs, VoteCounts: voteCounts})
		require.NoError(t, err)

		second, err := Compute(Input{Seed: seed, OptionIDs: optionIDs, VoteCounts: voteCounts})
		require.NoError(t, err)

		require.Equal(t, first.Modifier, second.Modifier, "seed %s", seed)
		require.Equal(t, first.Weights, second.Weights, "seed %s", seed)
		require.Equal(t, first.WinnerOptionID, second.WinnerOptionID, "seed %s", seed)
	}
}

// Every weight must stay at or above 1 after any modifier, so every option
// keeps a nonzero chance.
func TestComputeWeightFloor(t *testing.T) {
	voteSets := []map[string]int{
		{},
		{"a": 1},
		{"a": 50, "b": 1},
		{"a": 3, "b": 3, "c": 3, "d": 3},
		{"d": 12},
	}

	for i := 0; i < 400; i++ {
		seed := fmt.Sprintf("floor-%d", i)
		votes := voteSets[i%len(voteSets)]

		outcome, err := Compute(Input{
			Seed:       seed,
			OptionIDs:  []string{"a", "b", "c", "d"},
			VoteCounts: votes,
		})
		require.NoError(t, err)

		for j, w := range outcome.Weights {
			require.GreaterOrEqual(t, w, 1, "seed %s weight %d", seed, j)
		}
	}
}

func TestComputeWinnerIsAnOption(t *testing.T) {
	optionIDs := []string{"a", "b", "c"}

	for i := 0; i < 100; i++ {
		outcome, err := Compute(Input{
			Seed:      fmt.Sprintf("winner-%d", i),
			OptionIDs: optionIDs,
			VoteCounts: map[string]int{
				"a": i % 5,
				"b": i % 3,
			},
		})
		require.NoError(t, err)
		require.Contains(t, optionIDs, outcome.WinnerOptionID)
		require.Equal(t, optionIDs[outcome.WinnerIndex], outcome.WinnerOptionID)
	}
}

func TestComputeNoOptions(t *testing.T) {
	_, err := Compute(Input{Seed: "abc123"})
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestComputeMissingVoteCountsAsZero(t *testing.T) {
	outcome, err := Compute(Input{
		Seed:      "abc123",
		OptionIDs: []string{"X", "Y"},
		VoteCounts: map[string]int{
			"X": 3,
			"Y": 1,
		},
	})
	require.NoError(t, err)

	nilVotes, err := Compute(Input{
		Seed:       "party",
		OptionIDs:  []string{"a", "b", "c", "d"},
		VoteCounts: nil,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{8, 2}, outcome.Weights)
	assert.Equal(t, []int{1, 3, 1, 1}, nilVotes.Weights)
}

// The catalog order is a wire contract; see Modifiers.
func TestModifierCatalogPinned(t *testing.T) {
	assert.Equal(t, [4]models.Modifier{
		models.ModifierDoubleDown,
		models.ModifierLucky7,
		models.ModifierSabotageLowSteals,
		models.ModifierHotStreakNerf,
	}, Modifiers)
}
