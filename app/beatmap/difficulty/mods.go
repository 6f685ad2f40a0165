// Package difficulty decodes the mod bitmask into clock rate and
// OD/AR/CS/HP multipliers, and resolves a Beatmap's raw stats into the
// final BeatmapAttributes consumed by object preparation and the skills.
package difficulty

// Modifier is the mod bitmask; only the bits that affect calculation are
// named (spec.md §4.C). Unknown bits are ignored everywhere they're read.
type Modifier uint32

const (
	NoFail    Modifier = 1 << 0
	Easy      Modifier = 1 << 1
	TouchDevice Modifier = 1 << 2
	Hidden    Modifier = 1 << 3
	HardRock  Modifier = 1 << 4
	SuddenDeath Modifier = 1 << 5
	DoubleTime Modifier = 1 << 6
	Relax     Modifier = 1 << 7
	HalfTime  Modifier = 1 << 8
	Nightcore Modifier = 1 << 9 // always coupled with DoubleTime
	Flashlight Modifier = 1 << 10
	SpunOut   Modifier = 1 << 12
	Relax2    Modifier = 1 << 13 // autopilot
	Perfect   Modifier = 1 << 14
	ScoreV2   Modifier = 1 << 29
)

// DifficultyAdjustMask is the subset of mods that changes the resolved
// BeatmapAttributes; two plays differing only outside this mask share one
// cached attribute resolution (mirrors danser-go's oppDiffs map keyed by
// `mods & DifficultyAdjustMask`, see app/rulesets/osu/ruleset.go).
const DifficultyAdjustMask = Easy | HardRock | DoubleTime | Nightcore | HalfTime | Flashlight | TouchDevice | Relax | Relax2

func (m Modifier) Active(bit Modifier) bool {
	return m&bit != 0
}

// ClockRate returns 1.5 for DT/NC, 0.75 for HT, else 1.0.
func (m Modifier) ClockRate() float64 {
	switch {
	case m.Active(DoubleTime) || m.Active(Nightcore):
		return 1.5
	case m.Active(HalfTime):
		return 0.75
	default:
		return 1
	}
}

// ODARHPMultiplier returns 1.4 for HR, 0.5 for EZ, else 1.0.
func (m Modifier) ODARHPMultiplier() float64 {
	switch {
	case m.Active(HardRock):
		return 1.4
	case m.Active(Easy):
		return 0.5
	default:
		return 1
	}
}

// CSMultiplier returns 1.3 for HR, 0.5 for EZ, else 1.0.
func (m Modifier) CSMultiplier() float64 {
	switch {
	case m.Active(HardRock):
		return 1.3
	case m.Active(Easy):
		return 0.5
	default:
		return 1
	}
}

// ChangesSpeed reports whether the mod combination changes the clock rate.
func (m Modifier) ChangesSpeed() bool {
	return m.Active(DoubleTime) || m.Active(Nightcore) || m.Active(HalfTime)
}

// ChangesMap reports whether the mod combination changes the map's effective
// difficulty values, either through the clock rate (DT/NC/HT) or through the
// raw AR/OD/CS/HP multipliers (HR/EZ).
func (m Modifier) ChangesMap() bool {
	return m.Active(HalfTime) || m.Active(DoubleTime) || m.Active(Nightcore) || m.Active(HardRock) || m.Active(Easy)
}
