// Command starcalc is a minimal demo driver over the difficulty and
// performance packages: it builds a small built-in fixture beatmap,
// resolves the requested mode and mods, and prints stars/pp in a table
// (spec.md §6's "Output attributes" surfaced for a human). Grounded on the
// teacher's `ruleset.go` end-of-map summary table, adapted from its
// in-game overlay rendering to a one-shot CLI report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/catch"
	"github.com/wieku/danser-pp/app/difficulty/mania"
	"github.com/wieku/danser-pp/app/difficulty/osu"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
	"github.com/wieku/danser-pp/app/performance"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func main() {
	mode := flag.String("mode", "osu", "game mode: osu, taiko, catch, mania")
	modsFlag := flag.Uint("mods", 0, "mod bitmask (see spec.md §4.C)")
	combo := flag.Int("combo", -1, "achieved max combo (-1 = full combo)")
	misses := flag.Int("misses", 0, "miss count")
	accuracy := flag.Float64("acc", 1.0, "target accuracy in [0,1], used to synthesize hit counts")

	flag.Parse()

	b := fixtureBeatmap()

	gameMode, ok := parseMode(*mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}

	// b stays native Standard; every mode's Calculate auto-converts from
	// Standard internally (spec.md §7's mode-mismatch rule only rejects
	// non-Standard-origin conversions, not Standard itself).
	mods := difficulty.Modifier(*modsFlag)

	d := difficulty.NewDifficultyFromMap(b).SetMods(mods)

	var err error

	switch gameMode {
	case beatmap.ModeOsu:
		var attrs osu.Attributes
		attrs, err = osu.Calculate(b, d)
		if err != nil {
			break
		}

		maxCombo := attrs.MaxCombo
		achievedCombo := resolveCombo(*combo, maxCombo)

		state := performance.GenerateOsuState(attrs.NCircles+attrs.NSliders+attrs.NSpinners, *accuracy, -1, -1, -1, *misses, achievedCombo)
		pp := performance.CalculateOsu(attrs, mods, state)

		printOsu(attrs, pp)

	case beatmap.ModeTaiko:
		var attrs taiko.Attributes
		attrs, err = taiko.Calculate(b, d)
		if err != nil {
			break
		}

		achievedCombo := resolveCombo(*combo, attrs.MaxCombo)

		state := performance.TaikoScoreState{
			MaxCombo: achievedCombo,
			N300:     attrs.MaxCombo - *misses,
			NMisses:  *misses,
		}
		pp := performance.CalculateTaiko(attrs, mods, state)

		printTaiko(attrs, pp)

	case beatmap.ModeCatch:
		var attrs catch.Attributes
		attrs, err = catch.Calculate(b, d)
		if err != nil {
			break
		}

		achievedCombo := resolveCombo(*combo, attrs.MaxCombo)

		state := performance.CatchScoreState{
			MaxCombo:  achievedCombo,
			NFruits:   attrs.NFruits - *misses,
			NDroplets: attrs.NDroplets,
			NMisses:   *misses,
		}
		pp := performance.CalculateCatch(attrs, mods, state)

		printCatch(attrs, pp)

	case beatmap.ModeMania:
		var attrs mania.Attributes
		attrs, err = mania.Calculate(b, d)
		if err != nil {
			break
		}

		state := performance.ManiaScoreState{
			MaxCombo: attrs.MaxCombo,
			N320:     attrs.MaxCombo - *misses,
			NMisses:  *misses,
		}
		pp := performance.CalculateMania(attrs, mods, state)

		printMania(attrs, pp)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "calculation failed: %v\n", err)
		os.Exit(1)
	}
}

func parseMode(s string) (beatmap.GameMode, bool) {
	switch s {
	case "osu", "standard", "std":
		return beatmap.ModeOsu, true
	case "taiko":
		return beatmap.ModeTaiko, true
	case "catch", "fruits", "ctb":
		return beatmap.ModeCatch, true
	case "mania":
		return beatmap.ModeMania, true
	default:
		return 0, false
	}
}

func resolveCombo(requested, max int) int {
	if requested < 0 || requested > max {
		return max
	}

	return requested
}

func printOsu(attrs osu.Attributes, pp performance.OsuAttributes) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})

	table.Append([]string{"stars", humanize.FormatFloat("#,###.####", attrs.Stars)})
	table.Append([]string{"aim", humanize.FormatFloat("#,###.####", attrs.AimStrain)})
	table.Append([]string{"speed", humanize.FormatFloat("#,###.####", attrs.SpeedStrain)})
	table.Append([]string{"flashlight", humanize.FormatFloat("#,###.####", attrs.FlashlightRating)})
	table.Append([]string{"max combo", fmt.Sprint(attrs.MaxCombo)})
	table.Append([]string{"pp", humanize.FormatFloat("#,###.##", pp.PP)})
	table.Append([]string{"  pp (aim)", humanize.FormatFloat("#,###.##", pp.PPAim)})
	table.Append([]string{"  pp (speed)", humanize.FormatFloat("#,###.##", pp.PPSpeed)})
	table.Append([]string{"  pp (acc)", humanize.FormatFloat("#,###.##", pp.PPAccuracy)})

	table.Render()
}

func printTaiko(attrs taiko.Attributes, pp performance.TaikoAttributes) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})

	table.Append([]string{"stars", humanize.FormatFloat("#,###.####", attrs.Stars)})
	table.Append([]string{"color", humanize.FormatFloat("#,###.####", attrs.Color)})
	table.Append([]string{"rhythm", humanize.FormatFloat("#,###.####", attrs.Rhythm)})
	table.Append([]string{"stamina", humanize.FormatFloat("#,###.####", attrs.Stamina)})
	table.Append([]string{"max combo", fmt.Sprint(attrs.MaxCombo)})
	table.Append([]string{"pp", humanize.FormatFloat("#,###.##", pp.PP)})

	table.Render()
}

func printCatch(attrs catch.Attributes, pp performance.CatchAttributes) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})

	table.Append([]string{"stars", humanize.FormatFloat("#,###.####", attrs.Stars)})
	table.Append([]string{"max combo", fmt.Sprint(attrs.MaxCombo)})
	table.Append([]string{"fruits", fmt.Sprint(attrs.NFruits)})
	table.Append([]string{"droplets", fmt.Sprint(attrs.NDroplets)})
	table.Append([]string{"tiny droplets", fmt.Sprint(attrs.NTinyDroplets)})
	table.Append([]string{"pp", humanize.FormatFloat("#,###.##", pp.PP)})

	table.Render()
}

func printMania(attrs mania.Attributes, pp performance.ManiaAttributes) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})

	table.Append([]string{"stars", humanize.FormatFloat("#,###.####", attrs.Stars)})
	table.Append([]string{"max combo", fmt.Sprint(attrs.MaxCombo)})
	table.Append([]string{"pp", humanize.FormatFloat("#,###.##", pp.PP)})

	table.Render()
}

// fixtureBeatmap builds a small, deterministic Standard-mode map (eight
// circles, one slider and one spinner under a single timing point) used as the demo
// input for every mode — conversion handles the Taiko/Catch/Mania cases.
func fixtureBeatmap() *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		AR:               9,
		OD:               8,
		CS:               4,
		HP:               5,
		SliderMultiplier: 1.4,
		TickRate:         1,
		StackLeniency:    0.7,
		TimingPoints: []beatmap.TimingPoint{
			{Time: 0, BeatLen: 350},
		},
		DifficultyPoints: []beatmap.DifficultyPoint{
			{Time: 0, SpeedMultiplier: 1.0},
		},
	}

	positions := []vector.Pos2{
		{X: 100, Y: 100}, {X: 200, Y: 120}, {X: 260, Y: 200}, {X: 180, Y: 260},
		{X: 100, Y: 220}, {X: 150, Y: 150}, {X: 300, Y: 100}, {X: 350, Y: 180},
	}

	t := 1000.0

	for i, pos := range positions {
		h := beatmap.NewCircle(pos, t, 0, i%4 == 0)
		b.HitObjects = append(b.HitObjects, h)
		b.Sounds = append(b.Sounds, 0)

		t += 350
	}

	slider := beatmap.NewSlider(vector.Pos2{X: 200, Y: 200}, t, 180, 1, []beatmap.PathControlPoint{
		{Pos: vector.Pos2{X: 200, Y: 200}},
		{Pos: vector.Pos2{X: 260, Y: 260}},
		{Pos: vector.Pos2{X: 320, Y: 200}},
	}, nil, 0, true)
	b.HitObjects = append(b.HitObjects, slider)
	b.Sounds = append(b.Sounds, 0)

	t += 700

	spinner := beatmap.NewSpinner(t, t+1200, 0, false)
	b.HitObjects = append(b.HitObjects, spinner)
	b.Sounds = append(b.Sounds, 0)

	b.RefreshCounts()

	return b
}
