package a1

import (
	"errors"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{18277, "ZZZ"},
	}
	for _, tt := range tests {
		if got := Label(tt.index); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestLabelIndexRoundTrip(t *testing.T) {
	for i := 0; i <= 20000; i++ {
		got, err := Index(Label(i))
		if err != nil {
			t.Fatalf("Index(Label(%d)) failed: %v", i, err)
		}
		if got != i {
			t.Fatalf("Index(Label(%d)) = %d", i, got)
		}
	}
}

func TestIndexInvalid(t *testing.T) {
	for _, label := range []string{"", "a", "A1", "A B", "Ä"} {
		if _, err := Index(label); err == nil {
			t.Errorf("Index(%q): expected error", label)
		}
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
		wantErr  bool
	}{
		{0, 2, "A2", false},
		{1, 1, "B1", false},
		{26, 100, "AA100", false},
		{0, 0, "", true},
		{0, -3, "", true},
		{-1, 1, "", true},
	}
	for _, tt := range tests {
		got, err := Cell(tt.col, tt.row)
		if tt.wantErr {
			var invalid *InvalidAddressError
			if !errors.As(err, &invalid) {
				t.Errorf("Cell(%d, %d): expected InvalidAddressError, got %v", tt.col, tt.row, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Cell(%d, %d): unexpected error %v", tt.col, tt.row, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Cell(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	got, err := Range(0, 2, 100)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if got != "A2:A100" {
		t.Errorf("Range(0, 2, 100) = %q, want %q", got, "A2:A100")
	}

	if _, err := Range(0, 2, 1); err == nil {
		t.Error("Range(0, 2, 1): expected error for reversed rows")
	}
	if _, err := Range(0, 0, 10); err == nil {
		t.Error("Range(0, 0, 10): expected error for row 0")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input                              string
		startCol, startRow, endCol, endRow int
		wantErr                            bool
	}{
		{"A2:A100", 0, 2, 0, 100, false},
		{"A1:Z50", 0, 1, 25, 50, false},
		{"C3", 2, 3, 2, 3, false},
		{"$A$1:$B$2", 0, 1, 1, 2, false},
		{"b2:a1", 0, 1, 1, 2, false}, // lowercase, reversed: normalized
		{"A0:A5", 0, 0, 0, 0, true},
		{"1:5", 0, 0, 0, 0, true},
		{"", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sc, sr, ec, er, err := ParseRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if sc != tt.startCol || sr != tt.startRow || ec != tt.endCol || er != tt.endRow {
				t.Errorf("ParseRange(%q) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.input, sc, sr, ec, er,
					tt.startCol, tt.startRow, tt.endCol, tt.endRow)
			}
		})
	}
}
