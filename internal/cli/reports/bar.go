package reports

import "strings"

const barWidth = 20

// bar renders count as a block bar scaled against max.
func bar(count, max int) string {
	if count <= 0 || max <= 0 {
		return ""
	}
	n := count * barWidth / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func maxOf(counts []int) int {
	m := 0
	for _, c := range counts {
		m = max(m, c)
	}
	return m
}
