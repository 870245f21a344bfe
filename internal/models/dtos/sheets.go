package dtos

// SheetRef is one tab of a spreadsheet document.
type SheetRef struct {
	Title   string `json:"title"`
	SheetID int64  `json:"sheetId"`
}

// HeaderColumn is one cell of a sheet's header row, paired with its
// zero-based column index.
type HeaderColumn struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
