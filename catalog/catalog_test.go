package catalog

import (
	"testing"

	"github.com/jsphweid/formdex/model"
	"github.com/stretchr/testify/assert"
)

func TestSupportCountsPiecesAndOccurrencesCountMeasures(t *testing.T) {
	// piece X has one measure with {0,8}, piece Y has two
	c := New()
	c.Add(0, []string{"0-8"})
	c.Add(1, []string{"0-8", "0-8"})

	assert := assert.New(t)
	entry := c["0-8"]
	assert.Equal(3, entry.Occurrences)
	assert.Len(entry.Support, 2)
}

func TestMergeIsOrderIndependent(t *testing.T) {
	x := New()
	x.Add(0, []string{"0-8", "0-4-8-12"})
	y := New()
	y.Add(1, []string{"0-8", "0-8"})

	xy := New()
	xy.Merge(x)
	xy.Merge(y)

	yx := New()
	yx.Merge(y)
	yx.Merge(x)

	assert := assert.New(t)
	assert.Equal(xy, yx)
	assert.Equal(xy.Ranked(), yx.Ranked())
}

func TestRankedOrdersBySupportThenOccurrencesThenPattern(t *testing.T) {
	c := New()
	// "0": support 2, occurrences 2
	c.Add(0, []string{"0"})
	c.Add(1, []string{"0"})
	// "0-8": support 1, occurrences 3
	c.Add(2, []string{"0-8", "0-8", "0-8"})
	// "4": support 1, occurrences 1, smaller than "4-8"
	c.Add(2, []string{"4"})
	// "4-8": support 1, occurrences 1
	c.Add(2, []string{"4-8"})
	// "2-8": support 1, occurrences 1, lexicographically before "4-8"
	c.Add(2, []string{"2-8"})

	ranked := c.Ranked()

	assert := assert.New(t)
	assert.Equal([]int{0}, ranked[0].Subdivisions)
	assert.Equal(2, ranked[0].SupportCount)
	assert.Equal([]model.PieceNum{0, 1}, ranked[0].Pieces)
	assert.Equal([]int{0, 8}, ranked[1].Subdivisions)
	assert.Equal([]int{4}, ranked[2].Subdivisions)
	assert.Equal([]int{2, 8}, ranked[3].Subdivisions)
	assert.Equal([]int{4, 8}, ranked[4].Subdivisions)
}

func TestRankedIsDeterministic(t *testing.T) {
	c := New()
	c.Add(0, []string{"0-8", "4", "2-8", ""})
	c.Add(1, []string{"4", "0-8"})

	assert.Equal(t, c.Ranked(), c.Ranked())
}

func TestEmptyFingerprintIsAValidPattern(t *testing.T) {
	c := New()
	c.Add(0, []string{""})

	ranked := c.Ranked()
	assert := assert.New(t)
	assert.Len(ranked, 1)
	assert.Equal([]int{}, ranked[0].Subdivisions)
}

func TestTotalOccurrences(t *testing.T) {
	c := New()
	c.Add(0, []string{"0", "0", "4"})
	assert.Equal(t, 3, c.TotalOccurrences())
}
