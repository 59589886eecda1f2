package models

// Modifier is a chaos modifier: a weight-adjustment rule applied to the
// lottery before the final draw.
type Modifier string

const (
	// ModifierDoubleDown doubles every option at the current maximum weight
	ModifierDoubleDown Modifier = "DoubleDown"

	// ModifierLucky7 adds 7 to one option picked uniformly at random
	ModifierLucky7 Modifier = "Lucky7"

	// ModifierSabotageLowSteals moves a share of every other option's weight
	// to an underdog at the current minimum weight
	ModifierSabotageLowSteals Modifier = "SabotageLowSteals"

	// ModifierHotStreakNerf shrinks every option at the current maximum weight
	ModifierHotStreakNerf Modifier = "HotStreakNerf"
)
