package group

import "github.com/jsphweid/formdex/model"

// Partition splits measure indices into equivalence classes under
// exact key equality, one linear pass per class. Groups are discovered
// in order of their lowest member, so ordinals are stable for a given
// input. Every index lands in exactly one group.
func Partition(keys []string) []model.PatternGroup {
	var groups []model.PatternGroup
	visited := make([]bool, len(keys))

	for i, key := range keys {
		if visited[i] {
			continue
		}
		g := model.PatternGroup{Ordinal: len(groups), Key: key}
		for j := i; j < len(keys); j++ {
			if !visited[j] && keys[j] == key {
				g.Members = append(g.Members, j)
				visited[j] = true
			}
		}
		groups = append(groups, g)
	}

	return groups
}

// Ordinals flattens a partition back into one group ordinal per
// measure index.
func Ordinals(groups []model.PatternGroup, measureCount int) []int {
	res := make([]int, measureCount)
	for _, g := range groups {
		for _, m := range g.Members {
			res[m] = g.Ordinal
		}
	}
	return res
}
