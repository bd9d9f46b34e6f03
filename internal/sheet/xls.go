package sheet

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// maxLegacyCols is the BIFF8 column limit.
const maxLegacyCols = 256

func readXLS(data []byte) (records []Record, err error) {
	// The BIFF parser panics on malformed streams.
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, fmt.Errorf("%w: %v", ErrUnreadableFile, r)
		}
	}()

	if err := checkOLEChains(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: no workbook stream", ErrUnreadableFile)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoValidRows
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, ErrNoValidRows
	}

	header := legacyRow(ws, 0)
	if header == nil {
		return nil, nil
	}
	width := 0
	for c := 0; c < maxLegacyCols; c++ {
		if header.Col(c) != "" {
			width = c + 1
		}
	}

	grid := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := legacyRow(ws, i)
		cells := make([]string, width)
		if row != nil {
			for c := range cells {
				cells[c] = row.Col(c)
			}
		}
		grid = append(grid, cells)
	}
	return recordsFromGrid(grid), nil
}

// legacyRow returns row i, or nil when the sheet has no record for it.
func legacyRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	// WorkSheet.Row dereferences missing rows.
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
