package sheets

import (
	"fmt"
	"strings"
)

// A Comparison summarizes how the distinct values of two columns
// relate. Every slice is ordered by first appearance across column A
// then column B.
type Comparison struct {
	Intersection        []string       `json:"intersection"`
	OnlyInA             []string       `json:"onlyInA"`
	OnlyInB             []string       `json:"onlyInB"`
	Union               []string       `json:"union"`
	SymmetricDifference []string       `json:"symmetricDifference"`
	CountsA             map[string]int `json:"countsA"`
	CountsB             map[string]int `json:"countsB"`
	BlanksA             int            `json:"blanksA"`
	BlanksB             int            `json:"blanksB"`
}

// CompareColumns compares two columns of cell text. Values are trimmed;
// blanks are excluded from the set views and reported separately as
// counts, so a sparse column does not drown the comparison in empties.
func CompareColumns(a, b []string) Comparison {
	c := Comparison{
		CountsA: make(map[string]int),
		CountsB: make(map[string]int),
	}

	var order []string
	seen := make(map[string]bool)
	note := func(counts map[string]int, blanks *int, v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			*blanks++
			return
		}
		counts[v]++
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	for _, v := range a {
		note(c.CountsA, &c.BlanksA, v)
	}
	for _, v := range b {
		note(c.CountsB, &c.BlanksB, v)
	}

	for _, v := range order {
		c.Union = append(c.Union, v)
		inA := c.CountsA[v] > 0
		inB := c.CountsB[v] > 0
		switch {
		case inA && inB:
			c.Intersection = append(c.Intersection, v)
		case inA:
			c.OnlyInA = append(c.OnlyInA, v)
			c.SymmetricDifference = append(c.SymmetricDifference, v)
		default:
			c.OnlyInB = append(c.OnlyInB, v)
			c.SymmetricDifference = append(c.SymmetricDifference, v)
		}
	}
	return c
}

// FormatSummary returns a one-line human-readable comparison summary.
func (c Comparison) FormatSummary(nameA, nameB string) string {
	return fmt.Sprintf("%s: %d distinct (%d blank), %s: %d distinct (%d blank), overlap %d, only in %s %d, only in %s %d",
		nameA, len(c.CountsA), c.BlanksA,
		nameB, len(c.CountsB), c.BlanksB,
		len(c.Intersection),
		nameA, len(c.OnlyInA),
		nameB, len(c.OnlyInB))
}
