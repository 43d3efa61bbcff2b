package model

// PitchOnset is one note onset within a measure, on the sixteenth-note
// grid.
type PitchOnset struct {
	Position int   `json:"position"`
	Pitch    uint8 `json:"pitch"`
}

// Measure holds both fingerprints for one measure. Rhythm is the set
// of subdivision positions carrying at least one onset, sorted
// ascending. Melody is every (position, pitch) onset pair, sorted by
// position then pitch.
type Measure struct {
	Rhythm []int        `json:"rhythm"`
	Melody []PitchOnset `json:"melody"`
}

// PatternGroup is one equivalence class of measures sharing an exact
// fingerprint. Ordinal is unbounded; letters only exist at the
// presentation boundary.
type PatternGroup struct {
	Ordinal int
	Key     string
	Members []int
}

// Section is a maximal run of consecutive measures sharing one label.
// Measure numbers are 1-indexed for reporting.
type Section struct {
	Label        string `json:"label"`
	StartMeasure int    `json:"start"`
	EndMeasure   int    `json:"end"`
	Length       int    `json:"length"`
}

// Analysis is everything derived from a single piece.
type Analysis struct {
	MeasureCount    int       `json:"measure_count"`
	TotalTicks      int64     `json:"total_ticks"`
	RhythmForm      string    `json:"rhythm_form"`
	MelodicForm     string    `json:"melodic_form"`
	FormsMatch      bool      `json:"forms_match"`
	Sections        []Section `json:"sections"`
	OverallForm     string    `json:"overall_form"`
	MinPitch        uint8     `json:"min_pitch"`
	MaxPitch        uint8     `json:"max_pitch"`
	RhythmicDensity float64   `json:"rhythmic_density"`
	Measures        []Measure `json:"measures,omitempty"`

	// RhythmKeys has one canonical rhythm fingerprint key per measure,
	// for corpus aggregation.
	RhythmKeys []string `json:"-"`
}

type patternRef struct {
	Pattern string `json:"pattern"`
}

type phrasal struct {
	Rhythmic patternRef `json:"rhythmic"`
	Melodic  patternRef `json:"melodic"`
}

// PhrasalDoc is the JSON side-file written next to each analyzed piece.
type PhrasalDoc struct {
	Phrasal phrasal `json:"phrasal"`
}

func NewPhrasalDoc(a Analysis) PhrasalDoc {
	var doc PhrasalDoc
	doc.Phrasal.Rhythmic.Pattern = a.RhythmForm
	doc.Phrasal.Melodic.Pattern = a.MelodicForm
	return doc
}
