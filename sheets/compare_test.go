package sheets

import (
	"slices"
	"testing"
)

func TestCompareColumns(t *testing.T) {
	a := []string{"1", "2", "2", "3", " ", ""}
	b := []string{"2", "3", "4", ""}

	c := CompareColumns(a, b)

	if !slices.Equal(c.Intersection, []string{"2", "3"}) {
		t.Errorf("Intersection = %v", c.Intersection)
	}
	if !slices.Equal(c.OnlyInA, []string{"1"}) {
		t.Errorf("OnlyInA = %v", c.OnlyInA)
	}
	if !slices.Equal(c.OnlyInB, []string{"4"}) {
		t.Errorf("OnlyInB = %v", c.OnlyInB)
	}
	if !slices.Equal(c.Union, []string{"1", "2", "3", "4"}) {
		t.Errorf("Union = %v", c.Union)
	}
	if !slices.Equal(c.SymmetricDifference, []string{"1", "4"}) {
		t.Errorf("SymmetricDifference = %v", c.SymmetricDifference)
	}
	if c.CountsA["2"] != 2 {
		t.Errorf("CountsA[2] = %d, want 2", c.CountsA["2"])
	}
	if c.BlanksA != 2 || c.BlanksB != 1 {
		t.Errorf("blanks = (%d, %d), want (2, 1)", c.BlanksA, c.BlanksB)
	}
}

func TestCompareColumnsTrimsValues(t *testing.T) {
	c := CompareColumns([]string{" x "}, []string{"x"})
	if !slices.Equal(c.Intersection, []string{"x"}) {
		t.Errorf("Intersection = %v, want [x]", c.Intersection)
	}
}

func TestFormatSummary(t *testing.T) {
	c := CompareColumns([]string{"1", "2"}, []string{"2"})
	got := c.FormatSummary("left", "right")
	want := "left: 2 distinct (0 blank), right: 1 distinct (0 blank), overlap 1, only in left 1, only in right 0"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
