package model

type NoteKind uint8

const (
	NoteOn NoteKind = iota
	NoteOff
)

// NoteEvent is one entry of a decoded track. DeltaTicks is relative to
// the previous event, not absolute.
type NoteEvent struct {
	Kind       NoteKind
	Pitch      uint8
	DeltaTicks uint32
}

// NoteSpan is a sounding note being paired up while building a
// timeline. Closed is false until a matching off event arrives.
type NoteSpan struct {
	Pitch     uint8
	StartTick int64
	EndTick   int64
	Closed    bool
}
