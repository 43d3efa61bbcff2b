package model

type PieceNum = uint32
type PieceNumToPath = map[PieceNum]string

// PatternEntry is the corpus-wide tally for one canonical rhythm
// fingerprint. Occurrences counts measures, Support counts pieces.
type PatternEntry struct {
	Occurrences int
	Support     map[PieceNum]bool
}

// PieceInfo is external metadata about a piece, when someone bothered
// to store it.
type PieceInfo struct {
	Artist  string `json:"artist"`
	Title   string `json:"title"`
	Release string `json:"release"`
	Year    uint   `json:"year"`
}

// RankedPattern is one catalog entry flattened for reporting.
type RankedPattern struct {
	Subdivisions []int      `json:"subdivisions"`
	Occurrences  int        `json:"occurrences"`
	SupportCount int        `json:"support_count"`
	Pieces       []PieceNum `json:"pieces"`
}
