package analysis

import (
	"github.com/jsphweid/formdex/fingerprint"
	"github.com/jsphweid/formdex/form"
	"github.com/jsphweid/formdex/grid"
	"github.com/jsphweid/formdex/group"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/timeline"
)

// AnalyzePiece runs the whole single-piece pipeline: timeline, grid,
// fingerprints, grouping, form strings, sections. A piece with no
// onsets (or a zero ppqn) yields a zero-valued Analysis, never an
// error — there is nothing to analyze.
func AnalyzePiece(events []model.NoteEvent, ppqn uint16) model.Analysis {
	var res model.Analysis
	if ppqn == 0 || len(events) == 0 {
		return res
	}

	tl := timeline.Build(events)
	if !tl.HasOnsets() {
		return res
	}

	g := grid.New(ppqn)
	measures := fingerprint.Extract(tl, g)

	rhythmKeys := make([]string, len(measures))
	melodyKeys := make([]string, len(measures))
	for i, m := range measures {
		rhythmKeys[i] = fingerprint.RhythmKey(m.Rhythm)
		melodyKeys[i] = fingerprint.MelodyKey(m.Melody)
	}

	rhythmOrdinals := group.Ordinals(group.Partition(rhythmKeys), len(measures))
	melodicOrdinals := group.Ordinals(group.Partition(melodyKeys), len(measures))

	res.MeasureCount = len(measures)
	res.TotalTicks = tl.MaxOnsetTick
	res.Measures = measures
	res.RhythmKeys = rhythmKeys
	res.RhythmForm = form.String(rhythmOrdinals)
	res.MelodicForm = form.String(melodicOrdinals)
	res.FormsMatch = res.RhythmForm == res.MelodicForm
	res.Sections = form.Sections(melodicOrdinals)
	res.OverallForm = form.Overall(res.Sections)
	res.MinPitch, res.MaxPitch = tl.PitchRange()
	res.RhythmicDensity = float64(tl.OnsetCount) / float64(len(measures))

	return res
}
