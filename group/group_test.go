package group

import (
	"testing"

	"github.com/jsphweid/formdex/model"
	"github.com/stretchr/testify/assert"
)

func TestIdenticalMeasuresShareOneGroup(t *testing.T) {
	groups := Partition([]string{"0-4-8-12", "0-4-8-12"})

	assert := assert.New(t)
	assert.Len(groups, 1)
	assert.Equal([]int{0, 1}, groups[0].Members)
	assert.Equal([]int{0, 0}, Ordinals(groups, 2))
}

func TestAlternatingMeasures(t *testing.T) {
	groups := Partition([]string{"0-4-8-12", "0-2-8-12", "0-4-8-12"})

	assert := assert.New(t)
	assert.Len(groups, 2)
	assert.Equal(model.PatternGroup{Ordinal: 0, Key: "0-4-8-12", Members: []int{0, 2}}, groups[0])
	assert.Equal(model.PatternGroup{Ordinal: 1, Key: "0-2-8-12", Members: []int{1}}, groups[1])
	assert.Equal([]int{0, 1, 0}, Ordinals(groups, 3))
}

func TestGroupsOrderedByLowestMember(t *testing.T) {
	groups := Partition([]string{"b", "a", "a", "b"})

	assert := assert.New(t)
	assert.Equal("b", groups[0].Key)
	assert.Equal("a", groups[1].Key)
}

func TestPartitionCoversEveryIndexExactlyOnce(t *testing.T) {
	keys := []string{"x", "y", "x", "z", "y", "x", "", "z", ""}
	groups := Partition(keys)

	seen := make(map[int]int)
	for _, g := range groups {
		for _, m := range g.Members {
			seen[m]++
		}
	}

	assert := assert.New(t)
	assert.Len(seen, len(keys))
	for i := range keys {
		assert.Equal(1, seen[i])
	}
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, Partition(nil))
}
