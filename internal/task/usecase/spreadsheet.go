package usecase

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/sheet"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/datemath"
)

// Export writes the tasks of month (YYYY-MM, default the current month) as
// an .xlsx workbook.
func (uc *implUseCase) Export(ctx context.Context, month string) (task.ExportOutput, error) {
	m := datemath.MonthStart(uc.clock.Today())
	if month != "" {
		parsed, err := datemath.ParseMonthKey(month)
		if err != nil {
			return task.ExportOutput{}, task.ErrInvalidMonth
		}
		m = parsed
	}

	rows, err := sheet.ExportRows(uc.store.Snapshot(), m)
	if err != nil {
		return task.ExportOutput{}, err
	}

	name := sheet.SheetName(m)
	var buf bytes.Buffer
	if err := sheet.WriteXLSX(&buf, name, rows); err != nil {
		uc.l.Errorf(ctx, "uc.Export WriteXLSX: %v", err)
		return task.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Export: %d rows for %s", len(rows), datemath.MonthKey(m))
	return task.ExportOutput{
		FileName:  sheet.ExportFileName,
		SheetName: name,
		Rows:      len(rows),
		Content:   buf.Bytes(),
	}, nil
}

// Import appends every valid row of an uploaded .xlsx or .xls workbook to
// the store. Nothing is written when no row is valid.
func (uc *implUseCase) Import(ctx context.Context, input task.ImportInput) (task.ImportOutput, error) {
	if !supportedUpload(input.FileName) {
		return task.ImportOutput{}, sheet.ErrUnsupportedFormat
	}

	records, err := sheet.ReadWorkbook(input.File)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Import ReadWorkbook: %v", err)
		return task.ImportOutput{}, err
	}

	res, err := sheet.ImportRows(records, uc.newID)
	if err != nil {
		return task.ImportOutput{Skipped: res.Skipped}, err
	}

	err = uc.store.Update(ctx, func(tm model.TaskMap) error {
		sheet.Merge(tm, res.Tasks)
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Import: %v", err)
		return task.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Import: accepted=%d skipped=%d", res.Accepted, res.Skipped)
	return task.ImportOutput{
		Accepted: res.Accepted,
		Skipped:  res.Skipped,
		Days:     res.Tasks.SortedKeys(),
	}, nil
}

// supportedUpload reports whether name carries a workbook extension. Names
// without an extension are sniffed by the reader.
func supportedUpload(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case "", ".xlsx", ".xls":
		return true
	}
	return false
}
