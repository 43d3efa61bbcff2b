package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// SubdivisionsPerMeasure is the sixteenth-note grid of one 4/4 measure.
const SubdivisionsPerMeasure = 16

// BeatsPerMeasure is a hard assumption, not inferred from the file.
const BeatsPerMeasure = 4

const CatalogFile = "catalog.dat"
const PieceMapFile = "pieceMap.dat"
const AnalysesFile = "analyses.dat"
