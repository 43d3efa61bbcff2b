package grid

import "github.com/jsphweid/formdex/constants"

// Grid maps absolute ticks onto a fixed 4/4 sixteenth-note lattice.
// All division is integer division: a ppqn not divisible by 4 yields a
// truncated subdivision size, which is accepted as an approximation.
type Grid struct {
	MeasureTicks int64
	SubdivTicks  int64
}

func New(ppqn uint16) Grid {
	subdiv := int64(ppqn) / 4
	if subdiv < 1 {
		// resolutions under 4 ticks per quarter collapse to tick granularity
		subdiv = 1
	}
	return Grid{
		MeasureTicks: int64(constants.BeatsPerMeasure) * int64(ppqn),
		SubdivTicks:  subdiv,
	}
}

func (g Grid) MeasureIndex(tick int64) int {
	return int(tick / g.MeasureTicks)
}

func (g Grid) MeasureStart(index int) int64 {
	return int64(index) * g.MeasureTicks
}

// Subdivision gives the sixteenth-note position of a tick within its
// measure. Truncated subdivision sizes can push the raw value past the
// grid, so it is clamped to the last slot.
func (g Grid) Subdivision(tick int64) int {
	m := tick / g.MeasureTicks
	pos := int((tick - m*g.MeasureTicks) / g.SubdivTicks)
	if pos > constants.SubdivisionsPerMeasure-1 {
		pos = constants.SubdivisionsPerMeasure - 1
	}
	return pos
}

// MeasureCount is for pieces with at least one onset; such a piece
// always spans at least one measure.
func (g Grid) MeasureCount(maxOnsetTick int64) int {
	return int(maxOnsetTick/g.MeasureTicks) + 1
}
