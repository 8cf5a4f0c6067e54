package sheets

import (
	"context"
	"fmt"
	"slices"
)

// Dimensions of a newly created worksheet when the caller does not pick
// its own.
const (
	DefaultRows = 1000
	DefaultCols = 26
)

// Spreadsheet is the client-side handle to one remote spreadsheet. It
// owns worksheet lifecycle and hands out Worksheet facades.
type Spreadsheet struct {
	transport Transport
}

// New wraps an authenticated transport in a Spreadsheet facade.
func New(t Transport) *Spreadsheet {
	return &Spreadsheet{transport: t}
}

// ListWorksheets returns all worksheet names in tab order.
func (s *Spreadsheet) ListWorksheets(ctx context.Context) ([]string, error) {
	return s.transport.ListWorksheets(ctx)
}

// WorksheetExists reports whether a worksheet with the given name exists.
func (s *Spreadsheet) WorksheetExists(ctx context.Context, name string) (bool, error) {
	names, err := s.transport.ListWorksheets(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Worksheet returns a facade for the named worksheet, or an error
// wrapping ErrNotFound when it does not exist.
func (s *Spreadsheet) Worksheet(ctx context.Context, name string) (*Worksheet, error) {
	ok, err := s.WorksheetExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("worksheet %q: %w", name, ErrNotFound)
	}
	return &Worksheet{spreadsheet: s, name: name}, nil
}

// CreateWorksheet adds a new worksheet and returns its facade. Zero or
// negative dimensions fall back to DefaultRows and DefaultCols.
func (s *Spreadsheet) CreateWorksheet(ctx context.Context, name string, rows, cols int) (*Worksheet, error) {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	if err := s.transport.CreateWorksheet(ctx, name, rows, cols); err != nil {
		return nil, err
	}
	return &Worksheet{spreadsheet: s, name: name}, nil
}

// DeleteWorksheet removes the named worksheet.
func (s *Spreadsheet) DeleteWorksheet(ctx context.Context, name string) error {
	return s.transport.DeleteWorksheet(ctx, name)
}

// RenameWorksheet retitles a worksheet.
func (s *Spreadsheet) RenameWorksheet(ctx context.Context, oldName, newName string) error {
	return s.transport.RenameWorksheet(ctx, oldName, newName)
}

// CopyWorksheet creates a new worksheet and copies all cell values of
// the source worksheet into it. Formatting is not copied.
func (s *Spreadsheet) CopyWorksheet(ctx context.Context, source, destination string) (*Worksheet, error) {
	src, err := s.Worksheet(ctx, source)
	if err != nil {
		return nil, err
	}
	grid, err := src.Grid(ctx)
	if err != nil {
		return nil, err
	}
	dst, err := s.CreateWorksheet(ctx, destination, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(grid) > 0 {
		if err := s.transport.UpdateGrid(ctx, destination, grid); err != nil {
			return nil, fmt.Errorf("copying values to %q: %w", destination, err)
		}
	}
	return dst, nil
}
