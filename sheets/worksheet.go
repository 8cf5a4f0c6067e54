package sheets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/thewellington00/google-sheets-helper/internal/a1"
)

// Worksheet is a facade over one worksheet of a Spreadsheet. It holds a
// non-owning reference for the duration of an operation; obtain one
// from Spreadsheet.Worksheet or Spreadsheet.CreateWorksheet.
type Worksheet struct {
	spreadsheet *Spreadsheet
	name        string
}

// Name returns the worksheet title this facade is bound to.
func (w *Worksheet) Name() string { return w.name }

func (w *Worksheet) transport() Transport { return w.spreadsheet.transport }

// Headers returns the worksheet's first row.
func (w *Worksheet) Headers(ctx context.Context) ([]string, error) {
	grid, err := w.transport().FetchRange(ctx, w.name, "1:1")
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, nil
	}
	return grid[0], nil
}

// Grid returns all cell values of the worksheet.
func (w *Worksheet) Grid(ctx context.Context) (Grid, error) {
	return w.transport().FetchGrid(ctx, w.name)
}

// Properties returns the worksheet's current dimensions.
func (w *Worksheet) Properties(ctx context.Context) (WorksheetProperties, error) {
	return w.transport().WorksheetProperties(ctx, w.name)
}

// RowCount returns the number of rows currently holding data, header
// row included.
func (w *Worksheet) RowCount(ctx context.Context) (int, error) {
	grid, err := w.Grid(ctx)
	if err != nil {
		return 0, err
	}
	return len(grid), nil
}

// Records fetches the grid and materializes one Record per data row.
func (w *Worksheet) Records(ctx context.Context) ([]Record, error) {
	grid, err := w.Grid(ctx)
	if err != nil {
		return nil, err
	}
	return Records(grid), nil
}

// Table fetches the grid and materializes it as a column-oriented Table.
func (w *Worksheet) Table(ctx context.Context) (*Table, error) {
	grid, err := w.Grid(ctx)
	if err != nil {
		return nil, err
	}
	return NewTable(grid), nil
}

// AppendRows appends rows after the worksheet's last data row.
// Appending zero rows is a no-op with no remote call.
func (w *Worksheet) AppendRows(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	return w.transport().AppendRows(ctx, w.name, rows)
}

// NamedRanges lists the named ranges currently on the spreadsheet.
func (w *Worksheet) NamedRanges(ctx context.Context) ([]NamedRange, error) {
	return w.transport().ListNamedRanges(ctx)
}

// SyncNamedRanges creates one named range per header column spanning
// the data rows, and returns a map from header text to the A1 extent
// that was created. endRow of 0 means "through the last row that
// currently has data"; startRow is 1-based (2 skips the header row).
//
// An existing range with the same name is deleted first, so a rerun
// with the same inputs is idempotent rather than additive. Headers that
// are empty after trimming are skipped; when two headers share text the
// first column keeps the name and later columns are left out of the
// result rather than silently merged.
//
// A failure deleting or creating any single range aborts the rest of
// the pass: the error is a *RangeSyncError naming the header, and the
// returned map holds the ranges already created, which stay persisted
// remotely.
func (w *Worksheet) SyncNamedRanges(ctx context.Context, startRow, endRow int) (map[string]string, error) {
	if startRow < 1 {
		return nil, &a1.InvalidAddressError{Msg: fmt.Sprintf("data start row %d is not positive", startRow)}
	}

	headers, err := w.Headers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("worksheet %q has no header row", w.name)
	}

	if endRow == 0 {
		n, err := w.RowCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving last data row: %w", err)
		}
		endRow = n
		if endRow < startRow {
			endRow = startRow
		}
	}

	existing, err := w.transport().ListNamedRanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing named ranges: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, nr := range existing {
		taken[nr.Name] = true
	}

	created := make(map[string]string)
	seen := make(map[string]bool, len(headers))
	for i, header := range headers {
		if strings.TrimSpace(header) == "" || seen[header] {
			continue
		}
		seen[header] = true

		rng, err := a1.Range(i, startRow, endRow)
		if err != nil {
			return created, &RangeSyncError{Header: header, Err: err}
		}
		if taken[header] {
			if err := w.transport().DeleteNamedRange(ctx, header); err != nil && !IsNotFound(err) {
				return created, &RangeSyncError{Header: header, Err: err}
			}
		}
		if err := w.transport().CreateNamedRange(ctx, w.name, header, rng); err != nil {
			return created, &RangeSyncError{Header: header, Err: err}
		}
		created[header] = rng
	}
	return created, nil
}

// ClearNamedRanges deletes every named range on the spreadsheet and
// returns the names that were deleted. A failure on one range does not
// stop the pass; failures are joined into the returned error.
func (w *Worksheet) ClearNamedRanges(ctx context.Context) ([]string, error) {
	existing, err := w.transport().ListNamedRanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing named ranges: %w", err)
	}
	var deleted []string
	var errs []error
	for _, nr := range existing {
		if err := w.transport().DeleteNamedRange(ctx, nr.Name); err != nil && !IsNotFound(err) {
			errs = append(errs, fmt.Errorf("deleting named range %q: %w", nr.Name, err))
			continue
		}
		deleted = append(deleted, nr.Name)
	}
	return deleted, errors.Join(errs...)
}

// CrossJoinRanges fetches two A1 ranges, flattens them row-major
// dropping blank cells, and returns every (a, b) pair sorted ascending
// by the first then the second element. Ordering is numeric when a
// value parses as a number, case-insensitive textual otherwise.
func (w *Worksheet) CrossJoinRanges(ctx context.Context, rangeA, rangeB string) ([][2]string, error) {
	listA, err := w.fetchFlat(ctx, rangeA)
	if err != nil {
		return nil, err
	}
	listB, err := w.fetchFlat(ctx, rangeB)
	if err != nil {
		return nil, err
	}
	if len(listA) == 0 || len(listB) == 0 {
		return nil, nil
	}

	pairs := make([][2]string, 0, len(listA)*len(listB))
	for _, a := range listA {
		for _, b := range listB {
			pairs = append(pairs, [2]string{a, b})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if c := compareCellText(pairs[i][0], pairs[j][0]); c != 0 {
			return c < 0
		}
		return compareCellText(pairs[i][1], pairs[j][1]) < 0
	})
	return pairs, nil
}

func (w *Worksheet) fetchFlat(ctx context.Context, rng string) ([]string, error) {
	if _, _, _, _, err := a1.ParseRange(rng); err != nil {
		return nil, err
	}
	grid, err := w.transport().FetchRange(ctx, w.name, rng)
	if err != nil {
		return nil, err
	}
	var flat []string
	for _, row := range grid {
		for _, cell := range row {
			if v := strings.TrimSpace(cell); v != "" {
				flat = append(flat, v)
			}
		}
	}
	return flat, nil
}

// compareCellText orders cell text: blanks first, then numbers
// ascending, then text case-insensitively.
func compareCellText(a, b string) int {
	classA, numA, textA := cellSortKey(a)
	classB, numB, textB := cellSortKey(b)
	if classA != classB {
		return classA - classB
	}
	if classA == 1 {
		switch {
		case numA < numB:
			return -1
		case numA > numB:
			return 1
		}
		return 0
	}
	return strings.Compare(textA, textB)
}

func cellSortKey(v string) (class int, num float64, text string) {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0, 0, ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return 1, f, ""
	}
	return 2, 0, strings.ToLower(s)
}
