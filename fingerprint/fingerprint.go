package fingerprint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/formdex/grid"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/timeline"
)

// Extract derives both fingerprints for every measure of a piece. It
// is a pure function of the timeline and the grid; measures without
// onsets come out with empty fingerprints.
func Extract(tl timeline.Timeline, g grid.Grid) []model.Measure {
	if !tl.HasOnsets() {
		return nil
	}

	measures := make([]model.Measure, g.MeasureCount(tl.MaxOnsetTick))
	for _, tick := range tl.OnsetTicks {
		idx := g.MeasureIndex(tick)
		pos := g.Subdivision(tick)
		m := &measures[idx]

		// onset ticks arrive sorted, so positions per measure do too;
		// two ticks can still land on one subdivision
		if len(m.Rhythm) == 0 || m.Rhythm[len(m.Rhythm)-1] != pos {
			m.Rhythm = append(m.Rhythm, pos)
		}

		pitches := append([]uint8{}, tl.PitchesAt[tick]...)
		sort.Slice(pitches, func(i, j int) bool {
			return pitches[i] < pitches[j]
		})
		for _, p := range pitches {
			m.Melody = append(m.Melody, model.PitchOnset{Position: pos, Pitch: p})
		}
	}

	for i := range measures {
		melody := measures[i].Melody
		sort.Slice(melody, func(a, b int) bool {
			if melody[a].Position != melody[b].Position {
				return melody[a].Position < melody[b].Position
			}
			return melody[a].Pitch < melody[b].Pitch
		})
	}

	return measures
}

// RhythmKey turns a rhythm fingerprint into a canonical string key,
// independent of which pitches or which piece produced it.
func RhythmKey(positions []int) string {
	sorted := append([]int{}, positions...)
	sort.Ints(sorted)
	var res string
	for i, pos := range sorted {
		res += fmt.Sprintf("%v", pos)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// ParseRhythmKey inverts RhythmKey. The empty key is the empty
// fingerprint (a measure with no onsets).
func ParseRhythmKey(key string) []int {
	res := []int{}
	if key == "" {
		return res
	}
	for _, tok := range strings.Split(key, "-") {
		pos, err := strconv.Atoi(tok)
		if err != nil {
			panic("Malformed rhythm key: " + key)
		}
		res = append(res, pos)
	}
	return res
}

// MelodyKey turns a melody fingerprint into a canonical string key.
// The pairs are already in (position, pitch) order.
func MelodyKey(melody []model.PitchOnset) string {
	var res string
	for i, po := range melody {
		res += fmt.Sprintf("%v:%v", po.Position, po.Pitch)
		if i < len(melody)-1 {
			res += "-"
		}
	}
	return res
}
