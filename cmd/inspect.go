package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/formdex/analysis"
	"github.com/jsphweid/formdex/constants"
	"github.com/jsphweid/formdex/midi"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Analyzes a single MIDI file and prints the full breakdown",
	Long:  `Analyzes a single MIDI file and prints the full breakdown: rhythm grid, melody by beat, forms and sections`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func contains(positions []int, pos int) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

// printRhythmGrid renders each measure as 16 slots. Quarter notes show
// their beat number, eighths show '+', sixteenths '.', and slots with
// an onset are bracketed.
func printRhythmGrid(measures []model.Measure) {
	fmt.Println("\nRhythm grid (measures x 16ths):")
	for i, m := range measures {
		var row string
		for pos := 0; pos < constants.SubdivisionsPerMeasure; pos++ {
			var marker string
			switch {
			case pos%4 == 0:
				marker = fmt.Sprintf("%v", pos/4+1)
			case pos%2 == 0:
				marker = "+"
			default:
				marker = "."
			}
			if contains(m.Rhythm, pos) {
				row += "[" + marker + "]"
			} else {
				row += " " + marker + " "
			}
		}
		fmt.Printf("Measure %v: %v\n", i+1, row)
	}
}

func printMelody(measures []model.Measure) {
	fmt.Println("\nMelody by measure:")
	for i, m := range measures {
		if len(m.Melody) == 0 {
			continue
		}
		fmt.Printf("Measure %v:\n", i+1)
		for _, po := range m.Melody {
			fmt.Printf("  %v: %v (%v)\n", util.BeatLabel(po.Position), util.NoteName(po.Pitch), po.Pitch)
		}
	}
}

func printTopPitches(measures []model.Measure) {
	counts := make(map[uint8]int)
	for _, m := range measures {
		for _, po := range m.Melody {
			counts[po.Pitch]++
		}
	}

	pitches := util.GetKeys(counts)
	sort.Slice(pitches, func(i, j int) bool {
		if counts[pitches[i]] != counts[pitches[j]] {
			return counts[pitches[i]] > counts[pitches[j]]
		}
		return pitches[i] < pitches[j]
	})

	fmt.Println("\nMost frequent notes (MIDI number: count):")
	for _, p := range pitches[:util.Min(len(pitches), 5)] {
		fmt.Printf("  %v (%v): %v times\n", p, util.NoteName(p), counts[p])
	}
}

func inspect(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Could not read %v because: %v\n", path, err)
		return
	}
	events, ppqn, err := midi.ExtractNoteEvents(parsed)
	if err != nil {
		fmt.Printf("Could not extract events from %v because: %v\n", path, err)
		return
	}

	fmt.Printf("PPQN (Pulses Per Quarter Note): %v\n", ppqn)
	fmt.Printf("Note events: %v\n", len(events))

	a := analysis.AnalyzePiece(events, ppqn)
	if a.MeasureCount == 0 {
		fmt.Println("No note events to analyze")
		return
	}

	fmt.Printf("Total measures: %v\n", a.MeasureCount)
	fmt.Printf("Total duration: %v ticks (%.2f quarter notes)\n",
		a.TotalTicks, float64(a.TotalTicks)/float64(ppqn))
	fmt.Printf("Quarter note = %v ticks\n", ppqn)
	fmt.Printf("Eighth note = %v ticks\n", float64(ppqn)/2)
	fmt.Printf("16th note = %v ticks\n", float64(ppqn)/4)

	printRhythmGrid(a.Measures)
	printMelody(a.Measures)
	printTopPitches(a.Measures)

	fmt.Printf("\nNote range: %v to %v\n", util.NoteName(a.MinPitch), util.NoteName(a.MaxPitch))
	fmt.Printf("Rhythmic density: %.2f onsets per measure\n", a.RhythmicDensity)

	if a.FormsMatch {
		fmt.Println("\nThe rhythmic and melodic patterns match exactly.")
	} else {
		fmt.Println("\nThe rhythmic and melodic patterns differ:")
		fmt.Printf("  Rhythmic: %v\n", a.RhythmForm)
		fmt.Printf("  Melodic:  %v\n", a.MelodicForm)
	}

	fmt.Println("\nSections:")
	for _, s := range a.Sections {
		fmt.Printf("  %v: measures %v-%v (length %v)\n", s.Label, s.StartMeasure, s.EndMeasure, s.Length)
	}
	fmt.Printf("\nOverall melodic form: %v\n", a.OverallForm)
}
