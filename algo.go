package leetlist

import "strings"

// cartesian concatenates one choice from every position, in position order.
//
// A running list of partial words is extended position by position:
//
//	positions = [[c] [4 @] [7]]
//	step 0 => [c]
//	step 1 => [c4 c@]
//	step 2 => [c47 c@7]
//
// len(result) == len(p0)*len(p1)*...*len(pn) and an empty position list
// yields exactly one empty word.
func cartesian(positions [][]string) []string {
	partial := []string{""}
	for _, choices := range positions {
		if len(choices) == 1 {
			// identity or single replacement, no fan out
			for i := range partial {
				partial[i] += choices[0]
			}
			continue
		}
		next := make([]string, 0, len(partial)*len(choices))
		for _, prefix := range partial {
			for _, choice := range choices {
				var sb strings.Builder
				sb.Grow(len(prefix) + len(choice))
				sb.WriteString(prefix)
				sb.WriteString(choice)
				next = append(next, sb.String())
			}
		}
		partial = next
	}
	return partial
}
