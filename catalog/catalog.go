package catalog

import (
	"sort"

	"github.com/jsphweid/formdex/fingerprint"
	"github.com/jsphweid/formdex/model"
	"github.com/jsphweid/formdex/util"
)

// Catalog maps canonical rhythm fingerprint keys to corpus-wide
// tallies. Updates are additive only, so merging partial catalogs in
// any order produces the same result.
type Catalog map[string]model.PatternEntry

func New() Catalog {
	return make(Catalog)
}

// Add contributes one piece's per-measure rhythm keys. Occurrences
// count measures; the piece joins each key's support set at most once
// no matter how often the pattern recurs within the piece.
func (c Catalog) Add(piece model.PieceNum, rhythmKeys []string) {
	for _, key := range rhythmKeys {
		e := c[key]
		e.Occurrences++
		if e.Support == nil {
			e.Support = make(map[model.PieceNum]bool)
		}
		e.Support[piece] = true
		c[key] = e
	}
}

// Merge folds another partial catalog into this one: pointwise count
// addition and support-set union.
func (c Catalog) Merge(other Catalog) {
	for key, oe := range other {
		e := c[key]
		e.Occurrences += oe.Occurrences
		if e.Support == nil {
			e.Support = make(map[model.PieceNum]bool)
		}
		for piece := range oe.Support {
			e.Support[piece] = true
		}
		c[key] = e
	}
}

// Ranked orders patterns for reporting: widest piece support first,
// then raw occurrences, then smaller patterns, then lexicographic on
// the sorted subdivision lists. The order is total, so repeated runs
// over the same corpus print byte-identical reports.
func (c Catalog) Ranked() []model.RankedPattern {
	res := make([]model.RankedPattern, 0, len(c))
	for key, e := range c {
		pieces := util.GetKeys(e.Support)
		sort.Slice(pieces, func(i, j int) bool {
			return pieces[i] < pieces[j]
		})
		res = append(res, model.RankedPattern{
			Subdivisions: fingerprint.ParseRhythmKey(key),
			Occurrences:  e.Occurrences,
			SupportCount: len(e.Support),
			Pieces:       pieces,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.SupportCount != b.SupportCount {
			return a.SupportCount > b.SupportCount
		}
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if len(a.Subdivisions) != len(b.Subdivisions) {
			return len(a.Subdivisions) < len(b.Subdivisions)
		}
		for k := range a.Subdivisions {
			if a.Subdivisions[k] != b.Subdivisions[k] {
				return a.Subdivisions[k] < b.Subdivisions[k]
			}
		}
		return false
	})

	return res
}

// TotalOccurrences sums measure counts over every pattern.
func (c Catalog) TotalOccurrences() int {
	var total int
	for _, e := range c {
		total += e.Occurrences
	}
	return total
}
