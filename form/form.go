package form

import "github.com/jsphweid/formdex/model"

// Letter renders a group ordinal as letters: A..Z, then AA, AB, and so
// on (bijective base 26). Group identity is the unbounded ordinal;
// letters are presentation only, so any number of groups renders
// without corruption.
func Letter(ordinal int) string {
	n := ordinal + 1
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

// String emits one label per measure, in measure order.
func String(ordinals []int) string {
	var res string
	for _, o := range ordinals {
		res += Letter(o)
	}
	return res
}

// Sections finds the maximal runs of identical labels. Measure numbers
// are 1-indexed for reporting.
func Sections(ordinals []int) []model.Section {
	if len(ordinals) == 0 {
		return nil
	}

	var res []model.Section
	start := 0
	for i := 1; i <= len(ordinals); i++ {
		if i == len(ordinals) || ordinals[i] != ordinals[start] {
			res = append(res, model.Section{
				Label:        Letter(ordinals[start]),
				StartMeasure: start + 1,
				EndMeasure:   i,
				Length:       i - start,
			})
			start = i
		}
	}
	return res
}

// Overall is the run-collapsed form description: one label per
// section, so "AABA" comes out "ABA".
func Overall(sections []model.Section) string {
	var res string
	for _, s := range sections {
		res += s.Label
	}
	return res
}
