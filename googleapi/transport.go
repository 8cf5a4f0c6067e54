package googleapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/thewellington00/google-sheets-helper/internal/a1"
	"github.com/thewellington00/google-sheets-helper/sheets"
)

var _ sheets.Transport = (*Client)(nil)

// ListWorksheets implements sheets.Transport.
func (c *Client) ListWorksheets(ctx context.Context) ([]string, error) {
	meta, err := c.getSpreadsheet(ctx, "sheets.properties.title")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		names = append(names, s.Properties.Title)
	}
	return names, nil
}

// WorksheetProperties implements sheets.Transport.
func (c *Client) WorksheetProperties(ctx context.Context, title string) (sheets.WorksheetProperties, error) {
	p, err := c.sheetProps(ctx, title)
	if err != nil {
		return sheets.WorksheetProperties{}, err
	}
	wp := sheets.WorksheetProperties{Title: p.Title}
	if p.GridProperties != nil {
		wp.RowCount = p.GridProperties.RowCount
		wp.ColCount = p.GridProperties.ColumnCount
	}
	return wp, nil
}

// FetchGrid implements sheets.Transport.
func (c *Client) FetchGrid(ctx context.Context, title string) (sheets.Grid, error) {
	return c.FetchRange(ctx, title, "")
}

// FetchRange implements sheets.Transport. An empty a1Range fetches the
// whole worksheet.
func (c *Client) FetchRange(ctx context.Context, title, a1Range string) (sheets.Grid, error) {
	rng := quoteSheetTitle(title)
	if a1Range != "" {
		rng += "!" + a1Range
	}
	var resp valueRange
	if err := c.doJSON(ctx, "GET", c.valuesPath(rng), nil, nil, &resp); err != nil {
		return nil, err
	}
	grid := make(sheets.Grid, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprintf("%v", v)
			}
		}
		grid[i] = cells
	}
	return grid, nil
}

// AppendRows implements sheets.Transport.
func (c *Client) AppendRows(ctx context.Context, title string, rows [][]string) error {
	q := url.Values{
		"valueInputOption": {"USER_ENTERED"},
		"insertDataOption": {"INSERT_ROWS"},
	}
	body := valueRange{MajorDimension: "ROWS", Values: toAnyRows(rows)}
	return c.doJSON(ctx, "POST", c.valuesPath(quoteSheetTitle(title))+":append", q, body, nil)
}

// UpdateGrid implements sheets.Transport.
func (c *Client) UpdateGrid(ctx context.Context, title string, grid sheets.Grid) error {
	q := url.Values{"valueInputOption": {"USER_ENTERED"}}
	body := valueRange{MajorDimension: "ROWS", Values: toAnyRows(grid)}
	return c.doJSON(ctx, "PUT", c.valuesPath(quoteSheetTitle(title)+"!A1"), q, body, nil)
}

// CreateWorksheet implements sheets.Transport. The new worksheet gets a
// bold, frozen header row.
func (c *Client) CreateWorksheet(ctx context.Context, title string, rows, cols int) error {
	resp, err := c.batchUpdate(ctx, []batchRequest{{
		AddSheet: &addSheetRequest{Properties: sheetProperties{
			Title:          title,
			GridProperties: &gridProperties{RowCount: rows, ColumnCount: cols},
		}},
	}})
	if err != nil {
		return err
	}
	var sheetID int64
	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil {
		sheetID = resp.Replies[0].AddSheet.Properties.SheetID
	}

	_, err = c.batchUpdate(ctx, []batchRequest{
		{RepeatCell: &repeatCellRequest{
			Range:  gridRange{SheetID: sheetID, StartRowIndex: 0, EndRowIndex: 1, StartColumnIndex: 0, EndColumnIndex: cols},
			Cell:   cellData{UserEnteredFormat: &cellFormat{TextFormat: &textFormat{Bold: true}}},
			Fields: "userEnteredFormat.textFormat.bold",
		}},
		{UpdateSheetProperties: &updateSheetPropsRequest{
			Properties: sheetProperties{SheetID: sheetID, GridProperties: &gridProperties{FrozenRowCount: 1}},
			Fields:     "gridProperties.frozenRowCount",
		}},
	})
	if err != nil {
		return fmt.Errorf("formatting header row of %q: %w", title, err)
	}
	return nil
}

// DeleteWorksheet implements sheets.Transport.
func (c *Client) DeleteWorksheet(ctx context.Context, title string) error {
	p, err := c.sheetProps(ctx, title)
	if err != nil {
		return err
	}
	_, err = c.batchUpdate(ctx, []batchRequest{{
		DeleteSheet: &deleteSheetRequest{SheetID: p.SheetID},
	}})
	return err
}

// RenameWorksheet implements sheets.Transport.
func (c *Client) RenameWorksheet(ctx context.Context, oldTitle, newTitle string) error {
	p, err := c.sheetProps(ctx, oldTitle)
	if err != nil {
		return err
	}
	_, err = c.batchUpdate(ctx, []batchRequest{{
		UpdateSheetProperties: &updateSheetPropsRequest{
			Properties: sheetProperties{SheetID: p.SheetID, Title: newTitle},
			Fields:     "title",
		},
	}})
	return err
}

// ListNamedRanges implements sheets.Transport.
func (c *Client) ListNamedRanges(ctx context.Context) ([]sheets.NamedRange, error) {
	meta, err := c.getSpreadsheet(ctx, "namedRanges,sheets.properties")
	if err != nil {
		return nil, err
	}
	titles := make(map[int64]string, len(meta.Sheets))
	for _, s := range meta.Sheets {
		titles[s.Properties.SheetID] = s.Properties.Title
	}
	ranges := make([]sheets.NamedRange, 0, len(meta.NamedRanges))
	for _, nr := range meta.NamedRanges {
		ranges = append(ranges, sheets.NamedRange{
			ID:    nr.NamedRangeID,
			Name:  nr.Name,
			Sheet: titles[nr.Range.SheetID],
			Range: formatGridRange(nr.Range),
		})
	}
	return ranges, nil
}

// CreateNamedRange implements sheets.Transport.
func (c *Client) CreateNamedRange(ctx context.Context, title, name, a1Range string) error {
	p, err := c.sheetProps(ctx, title)
	if err != nil {
		return err
	}
	startCol, startRow, endCol, endRow, err := a1.ParseRange(a1Range)
	if err != nil {
		return err
	}
	_, err = c.batchUpdate(ctx, []batchRequest{{
		AddNamedRange: &addNamedRangeRequest{NamedRange: namedRangeEntry{
			Name: name,
			Range: gridRange{
				SheetID:          p.SheetID,
				StartRowIndex:    startRow - 1,
				EndRowIndex:      endRow,
				StartColumnIndex: startCol,
				EndColumnIndex:   endCol + 1,
			},
		}},
	}})
	return err
}

// DeleteNamedRange implements sheets.Transport. Deleting a name that is
// not bound is a no-op.
func (c *Client) DeleteNamedRange(ctx context.Context, name string) error {
	meta, err := c.getSpreadsheet(ctx, "namedRanges")
	if err != nil {
		return err
	}
	for _, nr := range meta.NamedRanges {
		if nr.Name == name {
			_, err := c.batchUpdate(ctx, []batchRequest{{
				DeleteNamedRange: &deleteNamedRangeRequest{NamedRangeID: nr.NamedRangeID},
			}})
			return err
		}
	}
	return nil
}

func (c *Client) getSpreadsheet(ctx context.Context, fields string) (*spreadsheetResponse, error) {
	var q url.Values
	if fields != "" {
		q = url.Values{"fields": {fields}}
	}
	var resp spreadsheetResponse
	if err := c.doJSON(ctx, "GET", "/v4/spreadsheets/"+c.SpreadsheetID, q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// sheetProps resolves a worksheet title to its properties, including
// the numeric sheet ID batchUpdate requests need.
func (c *Client) sheetProps(ctx context.Context, title string) (*sheetProperties, error) {
	meta, err := c.getSpreadsheet(ctx, "sheets.properties")
	if err != nil {
		return nil, err
	}
	for i := range meta.Sheets {
		if meta.Sheets[i].Properties.Title == title {
			return &meta.Sheets[i].Properties, nil
		}
	}
	return nil, fmt.Errorf("worksheet %q: %w", title, sheets.ErrNotFound)
}

func (c *Client) batchUpdate(ctx context.Context, reqs []batchRequest) (*batchUpdateResponse, error) {
	var resp batchUpdateResponse
	path := "/v4/spreadsheets/" + c.SpreadsheetID + ":batchUpdate"
	if err := c.doJSON(ctx, "POST", path, nil, batchUpdateRequest{Requests: reqs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) valuesPath(rng string) string {
	return "/v4/spreadsheets/" + c.SpreadsheetID + "/values/" + url.PathEscape(rng)
}

// quoteSheetTitle quotes a worksheet title for use in an A1 range.
func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// formatGridRange renders a bounded gridRange in A1 notation without
// the sheet prefix.
func formatGridRange(r gridRange) string {
	from, err := a1.Cell(r.StartColumnIndex, r.StartRowIndex+1)
	if err != nil {
		return ""
	}
	if r.EndRowIndex <= r.StartRowIndex || r.EndColumnIndex <= r.StartColumnIndex {
		return from
	}
	to, err := a1.Cell(r.EndColumnIndex-1, r.EndRowIndex)
	if err != nil {
		return ""
	}
	if from == to {
		return from
	}
	return from + ":" + to
}

func toAnyRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}
