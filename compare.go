package flagkit

import "strings"

type Comparator func(a, b string) int

var StringComparator Comparator = strings.Compare

// ReverseComparator inverts the order of cmp.
func ReverseComparator(cmp Comparator) Comparator {
	return func(a, b string) int { return -cmp(a, b) }
}
