package sheets

import (
	"context"
	"fmt"
	"slices"

	"github.com/thewellington00/google-sheets-helper/internal/a1"
)

// fakeTransport is an in-memory Transport for facade tests.
type fakeTransport struct {
	grids map[string]Grid
	order []string
	named []NamedRange

	createdRows, createdCols int
	appendCalls              int
	createRangeErr           map[string]error
	deleteRangeErr           map[string]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{grids: map[string]Grid{}}
}

func (f *fakeTransport) addSheet(title string, grid Grid) {
	f.grids[title] = grid
	f.order = append(f.order, title)
}

func (f *fakeTransport) sheet(title string) (Grid, error) {
	g, ok := f.grids[title]
	if !ok {
		return nil, fmt.Errorf("worksheet %q: %w", title, ErrNotFound)
	}
	return g, nil
}

func (f *fakeTransport) ListWorksheets(ctx context.Context) ([]string, error) {
	return slices.Clone(f.order), nil
}

func (f *fakeTransport) WorksheetProperties(ctx context.Context, title string) (WorksheetProperties, error) {
	g, err := f.sheet(title)
	if err != nil {
		return WorksheetProperties{}, err
	}
	cols := 0
	if len(g) > 0 {
		cols = len(g[0])
	}
	return WorksheetProperties{Title: title, RowCount: len(g), ColCount: cols}, nil
}

func (f *fakeTransport) FetchGrid(ctx context.Context, title string) (Grid, error) {
	g, err := f.sheet(title)
	if err != nil {
		return nil, err
	}
	return slices.Clone(g), nil
}

func (f *fakeTransport) FetchRange(ctx context.Context, title, a1Range string) (Grid, error) {
	g, err := f.sheet(title)
	if err != nil {
		return nil, err
	}
	if a1Range == "1:1" {
		if len(g) == 0 {
			return nil, nil
		}
		return Grid{slices.Clone(g[0])}, nil
	}
	startCol, startRow, endCol, endRow, err := a1.ParseRange(a1Range)
	if err != nil {
		return nil, err
	}
	var out Grid
	for r := startRow - 1; r < endRow && r < len(g); r++ {
		var row []string
		for c := startCol; c <= endCol; c++ {
			if c < len(g[r]) {
				row = append(row, g[r][c])
			} else {
				row = append(row, "")
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeTransport) AppendRows(ctx context.Context, title string, rows [][]string) error {
	g, err := f.sheet(title)
	if err != nil {
		return err
	}
	f.appendCalls++
	f.grids[title] = append(g, rows...)
	return nil
}

func (f *fakeTransport) UpdateGrid(ctx context.Context, title string, grid Grid) error {
	if _, err := f.sheet(title); err != nil {
		return err
	}
	f.grids[title] = slices.Clone(grid)
	return nil
}

func (f *fakeTransport) CreateWorksheet(ctx context.Context, title string, rows, cols int) error {
	if _, ok := f.grids[title]; ok {
		return fmt.Errorf("worksheet %q already exists", title)
	}
	f.createdRows, f.createdCols = rows, cols
	f.addSheet(title, Grid{})
	return nil
}

func (f *fakeTransport) DeleteWorksheet(ctx context.Context, title string) error {
	if _, err := f.sheet(title); err != nil {
		return err
	}
	delete(f.grids, title)
	f.order = slices.DeleteFunc(f.order, func(s string) bool { return s == title })
	return nil
}

func (f *fakeTransport) RenameWorksheet(ctx context.Context, oldTitle, newTitle string) error {
	g, err := f.sheet(oldTitle)
	if err != nil {
		return err
	}
	delete(f.grids, oldTitle)
	f.grids[newTitle] = g
	for i, s := range f.order {
		if s == oldTitle {
			f.order[i] = newTitle
		}
	}
	return nil
}

func (f *fakeTransport) ListNamedRanges(ctx context.Context) ([]NamedRange, error) {
	return slices.Clone(f.named), nil
}

func (f *fakeTransport) CreateNamedRange(ctx context.Context, title, name, a1Range string) error {
	if err := f.createRangeErr[name]; err != nil {
		return err
	}
	for _, nr := range f.named {
		if nr.Name == name {
			return fmt.Errorf("named range %q already exists", name)
		}
	}
	f.named = append(f.named, NamedRange{Name: name, Sheet: title, Range: a1Range})
	return nil
}

func (f *fakeTransport) DeleteNamedRange(ctx context.Context, name string) error {
	if err := f.deleteRangeErr[name]; err != nil {
		return err
	}
	f.named = slices.DeleteFunc(f.named, func(nr NamedRange) bool { return nr.Name == name })
	return nil
}
