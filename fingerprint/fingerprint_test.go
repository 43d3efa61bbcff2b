package fingerprint

import (
	"testing"

	"github.com/jsphweid/formdex/grid"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/timeline"
	"github.com/stretchr/testify/assert"
)

func on(pitch uint8, delta uint32) model.NoteEvent {
	return model.NoteEvent{Kind: model.NoteOn, Pitch: pitch, DeltaTicks: delta}
}

func off(pitch uint8, delta uint32) model.NoteEvent {
	return model.NoteEvent{Kind: model.NoteOff, Pitch: pitch, DeltaTicks: delta}
}

func TestSingleNotePiece(t *testing.T) {
	tl := timeline.Build([]model.NoteEvent{on(60, 0), off(60, 128)})
	measures := Extract(tl, grid.New(128))

	assert := assert.New(t)
	assert.Len(measures, 1)
	assert.Equal([]int{0}, measures[0].Rhythm)
	assert.Equal([]model.PitchOnset{{Position: 0, Pitch: 60}}, measures[0].Melody)
}

func TestRhythmIsASetButMelodyKeepsEveryOnset(t *testing.T) {
	// two ticks quantizing onto one subdivision: one rhythm slot, two
	// melody entries
	tl := timeline.Build([]model.NoteEvent{
		on(60, 0),
		on(64, 8),
	})
	measures := Extract(tl, grid.New(128))

	assert := assert.New(t)
	assert.Equal([]int{0}, measures[0].Rhythm)
	assert.Equal([]model.PitchOnset{
		{Position: 0, Pitch: 60},
		{Position: 0, Pitch: 64},
	}, measures[0].Melody)
}

func TestMelodySortedByPositionThenPitch(t *testing.T) {
	tl := timeline.Build([]model.NoteEvent{
		on(64, 0),
		on(60, 0),
		on(55, 32),
	})
	measures := Extract(tl, grid.New(128))

	assert.Equal(t, []model.PitchOnset{
		{Position: 0, Pitch: 60},
		{Position: 0, Pitch: 64},
		{Position: 1, Pitch: 55},
	}, measures[0].Melody)
}

func TestMeasureGapsProduceEmptyFingerprints(t *testing.T) {
	// onsets in measures 0 and 2 only
	tl := timeline.Build([]model.NoteEvent{
		on(60, 0),
		on(60, 1024),
	})
	measures := Extract(tl, grid.New(128))

	assert := assert.New(t)
	assert.Len(measures, 3)
	assert.Empty(measures[1].Rhythm)
	assert.Empty(measures[1].Melody)
}

func TestExtractIsIdempotent(t *testing.T) {
	tl := timeline.Build([]model.NoteEvent{
		on(60, 0), off(60, 64), on(62, 64), off(62, 64),
	})
	g := grid.New(128)

	assert.Equal(t, Extract(tl, g), Extract(tl, g))
}

func TestRhythmKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-8-12", RhythmKey([]int{0, 4, 8, 12}))
	assert.Equal("0-4-8-12", RhythmKey([]int{12, 4, 0, 8}))
	assert.Equal("", RhythmKey(nil))
}

func TestParseRhythmKeyRoundTrips(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{0, 4, 8, 12}, ParseRhythmKey("0-4-8-12"))
	assert.Equal([]int{}, ParseRhythmKey(""))
	assert.Equal([]int{0, 8}, ParseRhythmKey(RhythmKey([]int{8, 0})))
}

func TestMelodyKey(t *testing.T) {
	melody := []model.PitchOnset{
		{Position: 0, Pitch: 52},
		{Position: 4, Pitch: 55},
	}
	assert.Equal(t, "0:52-4:55", MelodyKey(melody))
	assert.Equal(t, "", MelodyKey(nil))
}
