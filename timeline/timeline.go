package timeline

import "github.com/jsphweid/formdex/model"

// Timeline is the absolute-tick view of a relative-time event stream.
// PitchesAt keeps pitches in encounter order; later stages sort them.
type Timeline struct {
	OnsetTicks   []int64
	PitchesAt    map[int64][]uint8
	Spans        map[uint8][]model.NoteSpan
	MaxOnsetTick int64
	OnsetCount   int
}

// Build accumulates delta ticks into absolute positions and pairs note
// on/off events into spans. The delta is applied before the event, so
// it expresses time since the previous event including any silence
// before the first one.
//
// Off events match the most recently opened span for their pitch that
// is still open. A pitch can be re-struck before its previous note is
// released, so matching is LIFO, not first-open. An off event with no
// open span is malformed input and is ignored.
func Build(events []model.NoteEvent) Timeline {
	tl := Timeline{
		PitchesAt: make(map[int64][]uint8),
		Spans:     make(map[uint8][]model.NoteSpan),
	}

	var now int64
	for _, evt := range events {
		now += int64(evt.DeltaTicks)

		switch evt.Kind {
		case model.NoteOn:
			if _, seen := tl.PitchesAt[now]; !seen {
				// deltas are non-negative, so ticks arrive in order
				tl.OnsetTicks = append(tl.OnsetTicks, now)
			}
			tl.PitchesAt[now] = append(tl.PitchesAt[now], evt.Pitch)
			tl.Spans[evt.Pitch] = append(tl.Spans[evt.Pitch], model.NoteSpan{
				Pitch:     evt.Pitch,
				StartTick: now,
			})
			if now > tl.MaxOnsetTick {
				tl.MaxOnsetTick = now
			}
			tl.OnsetCount++
		case model.NoteOff:
			spans := tl.Spans[evt.Pitch]
			for i := len(spans) - 1; i >= 0; i-- {
				if !spans[i].Closed {
					spans[i].EndTick = now
					spans[i].Closed = true
					break
				}
			}
		}
	}

	return tl
}

func (t Timeline) HasOnsets() bool {
	return len(t.OnsetTicks) > 0
}

// PitchRange returns the lowest and highest pitch with an onset.
// Only meaningful when HasOnsets.
func (t Timeline) PitchRange() (uint8, uint8) {
	var min uint8 = 127
	var max uint8
	for _, pitches := range t.PitchesAt {
		for _, p := range pitches {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
	}
	return min, max
}
