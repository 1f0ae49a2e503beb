package tags

import (
	"slices"
	"strconv"
)

// legacyToNumpad maps SSA v4 alignment values onto numpad layout.
var legacyToNumpad = map[int]int{
	1:  1,
	2:  2,
	3:  3,
	5:  7,
	6:  8,
	7:  9,
	9:  4,
	10: 5,
	11: 6,
}

var (
	alignLeft    = []int{1, 4, 7}
	alignMiddle  = []int{2, 5, 8}
	alignRight   = []int{3, 6, 9}
	alignTop     = []int{7, 8, 9}
	alignVCenter = []int{4, 5, 6}
)

// LegacyToNumpad converts an SSA v4 alignment value. ok is false for values
// outside the legacy table (4 and 8 are unused in SSA).
func LegacyToNumpad(value int) (int, bool) {
	n, ok := legacyToNumpad[value]
	return n, ok
}

// NormalizeStyleAlignment resolves a style's default alignment. Styles carry
// numpad values; 10 and 11 only exist in the legacy layout and are mapped.
func NormalizeStyleAlignment(value int) int {
	if value >= 1 && value <= 9 {
		return value
	}
	if n, ok := legacyToNumpad[value]; ok {
		return n
	}
	return 2
}

// ParseAlignment returns the numpad alignment of the first alignment tag in
// block. Out of range values are treated as absent.
func ParseAlignment(block string) (int, bool) {
	m := Alignment.FindStringSubmatch(block)
	if m == nil {
		return 0, false
	}
	value, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	if m[1] == "n" {
		if value < 1 || value > 9 {
			return 0, false
		}
		return value, true
	}
	return LegacyToNumpad(value)
}

func IsLeft(a int) bool    { return slices.Contains(alignLeft, a) }
func IsMiddle(a int) bool  { return slices.Contains(alignMiddle, a) }
func IsRight(a int) bool   { return slices.Contains(alignRight, a) }
func IsTop(a int) bool     { return slices.Contains(alignTop, a) }
func IsVCenter(a int) bool { return slices.Contains(alignVCenter, a) }
