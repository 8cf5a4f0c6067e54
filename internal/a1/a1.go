// Package a1 converts between zero-based grid coordinates and the A1
// notation used by the remote spreadsheet service.
package a1

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cellRefRe matches a cell reference like A1, $B$2, AA100
var cellRefRe = regexp.MustCompile(`^\$?([A-Z]+)\$?([0-9]+)$`)

// InvalidAddressError reports a cell address that cannot exist on a
// worksheet, such as a zero or negative row number.
type InvalidAddressError struct {
	Msg string
}

func (e *InvalidAddressError) Error() string { return "invalid address: " + e.Msg }

// Label converts a zero-based column index to its letter label:
// 0 -> "A", 25 -> "Z", 26 -> "AA", 701 -> "ZZ", 702 -> "AAA".
//
// Labels are bijective base-26 numerals: there is no zero digit, so the
// carry rule differs from ordinary base-26 past "Z". A negative index
// yields the empty string.
func Label(index int) string {
	if index < 0 {
		return ""
	}
	buf := make([]byte, 0, 3)
	for index >= 0 {
		buf = append(buf, byte('A'+index%26))
		index = index/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Index converts a column label back to its zero-based index ("A" -> 0).
// It is the inverse of Label for every index >= 0.
func Index(label string) (int, error) {
	if label == "" {
		return 0, &InvalidAddressError{Msg: "empty column label"}
	}
	n := 0
	for _, c := range label {
		if c < 'A' || c > 'Z' {
			return 0, &InvalidAddressError{Msg: fmt.Sprintf("column label %q contains %q", label, c)}
		}
		n = n*26 + int(c-'A') + 1
	}
	return n - 1, nil
}

// Cell formats a zero-based column index and a 1-based row number as an
// A1 cell reference, e.g. Cell(0, 2) == "A2".
func Cell(col, row int) (string, error) {
	if col < 0 {
		return "", &InvalidAddressError{Msg: fmt.Sprintf("column index %d is negative", col)}
	}
	if row < 1 {
		return "", &InvalidAddressError{Msg: fmt.Sprintf("row %d is not positive", row)}
	}
	return Label(col) + strconv.Itoa(row), nil
}

// Range formats a single-column range like "A2:A100". The end row must
// already be resolved to a concrete row number; open-ended extents are
// resolved by the caller before formatting.
func Range(col, startRow, endRow int) (string, error) {
	if endRow < startRow {
		return "", &InvalidAddressError{Msg: fmt.Sprintf("end row %d precedes start row %d", endRow, startRow)}
	}
	from, err := Cell(col, startRow)
	if err != nil {
		return "", err
	}
	to, err := Cell(col, endRow)
	if err != nil {
		return "", err
	}
	return from + ":" + to, nil
}

// ParseRange parses a range like "A2:B10" (or a single cell "C3") and
// returns the zero-based start/end columns and 1-based start/end rows,
// normalized so start <= end.
func ParseRange(rng string) (startCol, startRow, endCol, endRow int, err error) {
	fromRef, toRef, hasColon := strings.Cut(rng, ":")
	if !hasColon {
		toRef = fromRef // single cell
	}

	startCol, startRow, err = parseRef(fromRef)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	endCol, endRow, err = parseRef(toRef)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	// Normalize order
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	return startCol, startRow, endCol, endRow, nil
}

func parseRef(ref string) (col, row int, err error) {
	m := cellRefRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(ref)))
	if m == nil {
		return 0, 0, &InvalidAddressError{Msg: fmt.Sprintf("cannot parse cell reference %q", ref)}
	}
	col, err = Index(m[1])
	if err != nil {
		return 0, 0, err
	}
	row, _ = strconv.Atoi(m[2])
	if row < 1 {
		return 0, 0, &InvalidAddressError{Msg: fmt.Sprintf("row %d is not positive", row)}
	}
	return col, row, nil
}
