package googleapi

// errorResponse is the standard API error shape.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// spreadsheetResponse is the subset of spreadsheets.get this client reads.
type spreadsheetResponse struct {
	Sheets      []sheetEntry      `json:"sheets"`
	NamedRanges []namedRangeEntry `json:"namedRanges"`
}

type sheetEntry struct {
	Properties sheetProperties `json:"properties"`
}

type sheetProperties struct {
	SheetID        int64           `json:"sheetId,omitempty"`
	Title          string          `json:"title,omitempty"`
	GridProperties *gridProperties `json:"gridProperties,omitempty"`
}

type gridProperties struct {
	RowCount       int `json:"rowCount,omitempty"`
	ColumnCount    int `json:"columnCount,omitempty"`
	FrozenRowCount int `json:"frozenRowCount,omitempty"`
}

type namedRangeEntry struct {
	NamedRangeID string    `json:"namedRangeId,omitempty"`
	Name         string    `json:"name"`
	Range        gridRange `json:"range"`
}

// gridRange is a half-open rectangle: start indexes are inclusive and
// zero-based, end indexes exclusive.
type gridRange struct {
	SheetID          int64 `json:"sheetId"`
	StartRowIndex    int   `json:"startRowIndex"`
	EndRowIndex      int   `json:"endRowIndex"`
	StartColumnIndex int   `json:"startColumnIndex"`
	EndColumnIndex   int   `json:"endColumnIndex"`
}

// valueRange mirrors the spreadsheets.values resources.
type valueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values,omitempty"`
}

type batchUpdateRequest struct {
	Requests []batchRequest `json:"requests"`
}

// batchRequest holds exactly one of the request kinds this client sends.
type batchRequest struct {
	AddSheet              *addSheetRequest         `json:"addSheet,omitempty"`
	DeleteSheet           *deleteSheetRequest      `json:"deleteSheet,omitempty"`
	UpdateSheetProperties *updateSheetPropsRequest `json:"updateSheetProperties,omitempty"`
	AddNamedRange         *addNamedRangeRequest    `json:"addNamedRange,omitempty"`
	DeleteNamedRange      *deleteNamedRangeRequest `json:"deleteNamedRange,omitempty"`
	RepeatCell            *repeatCellRequest       `json:"repeatCell,omitempty"`
}

type addSheetRequest struct {
	Properties sheetProperties `json:"properties"`
}

type deleteSheetRequest struct {
	SheetID int64 `json:"sheetId"`
}

type updateSheetPropsRequest struct {
	Properties sheetProperties `json:"properties"`
	Fields     string          `json:"fields"`
}

type addNamedRangeRequest struct {
	NamedRange namedRangeEntry `json:"namedRange"`
}

type deleteNamedRangeRequest struct {
	NamedRangeID string `json:"namedRangeId"`
}

type repeatCellRequest struct {
	Range  gridRange `json:"range"`
	Cell   cellData  `json:"cell"`
	Fields string    `json:"fields"`
}

type cellData struct {
	UserEnteredFormat *cellFormat `json:"userEnteredFormat,omitempty"`
}

type cellFormat struct {
	TextFormat *textFormat `json:"textFormat,omitempty"`
}

type textFormat struct {
	Bold bool `json:"bold"`
}

type batchUpdateResponse struct {
	Replies []batchReply `json:"replies"`
}

type batchReply struct {
	AddSheet *sheetEntry `json:"addSheet,omitempty"`
}
