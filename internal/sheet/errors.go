package sheet

import "errors"

var (
	ErrNothingToExport   = errors.New("sheet: no tasks in the selected month")
	ErrNoValidRows       = errors.New("sheet: no valid rows found")
	ErrUnsupportedFormat = errors.New("sheet: unsupported spreadsheet format")
	ErrUnreadableFile    = errors.New("sheet: file cannot be read as a workbook")
)
