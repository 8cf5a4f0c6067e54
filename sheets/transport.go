// Package sheets presents a remote spreadsheet as structured worksheets:
// record and typed-table reads, row appends, named-range synchronization
// and worksheet lifecycle, all over a narrow Transport interface that
// hides the service's raw cell addressing.
package sheets

import "context"

// Grid is the raw cell contents of a worksheet, row-major. Row 0 is
// conventionally the header row. Rows may be ragged; materialization
// pads short rows with empty cells up to the header width.
type Grid [][]string

// NamedRange is a named cell extent persisted on the spreadsheet.
type NamedRange struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sheet string `json:"sheet"`
	Range string `json:"range"` // A1 notation without the sheet prefix, e.g. "A2:A100"
}

// WorksheetProperties describes a worksheet's identity and dimensions.
type WorksheetProperties struct {
	Title    string `json:"title"`
	RowCount int    `json:"rowCount"`
	ColCount int    `json:"colCount"`
}

// Transport is the remote service surface the facades need. An
// implementation owns authentication, encoding and any retry policy;
// the facades never retry and never log.
//
// Implementations report a missing worksheet or named range with an
// error satisfying errors.Is(err, ErrNotFound).
type Transport interface {
	// ListWorksheets returns worksheet titles in tab order.
	ListWorksheets(ctx context.Context) ([]string, error)

	// WorksheetProperties returns dimensions for the named worksheet.
	WorksheetProperties(ctx context.Context, title string) (WorksheetProperties, error)

	// FetchGrid returns all cell values of the named worksheet.
	FetchGrid(ctx context.Context, title string) (Grid, error)

	// FetchRange returns the cell values within an A1 range of the
	// named worksheet.
	FetchRange(ctx context.Context, title, a1Range string) (Grid, error)

	// AppendRows appends rows after the last data row of the worksheet.
	AppendRows(ctx context.Context, title string, rows [][]string) error

	// UpdateGrid overwrites cells starting at A1 with the given values.
	UpdateGrid(ctx context.Context, title string, grid Grid) error

	// CreateWorksheet adds a worksheet with the given dimensions.
	CreateWorksheet(ctx context.Context, title string, rows, cols int) error

	// DeleteWorksheet removes the named worksheet.
	DeleteWorksheet(ctx context.Context, title string) error

	// RenameWorksheet retitles a worksheet.
	RenameWorksheet(ctx context.Context, oldTitle, newTitle string) error

	// ListNamedRanges returns every named range on the spreadsheet.
	ListNamedRanges(ctx context.Context) ([]NamedRange, error)

	// CreateNamedRange binds a name to an A1 extent on the worksheet.
	// The service rejects a name that is already bound.
	CreateNamedRange(ctx context.Context, title, name, a1Range string) error

	// DeleteNamedRange removes the named range; deleting a name that
	// does not exist is a no-op.
	DeleteNamedRange(ctx context.Context, name string) error
}
