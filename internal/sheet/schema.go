package sheet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Column headers. They are part of the round-trip contract with files
// produced by earlier versions of the planner.
const (
	HeaderDate         = "Tanggal"
	HeaderText         = "Tugas"
	HeaderPlanningTime = "Planning Time (jam)"
	HeaderActualTime   = "Actual Time (jam)"
	HeaderStatus       = "Status"
	HeaderResultLink   = "Link Hasil Tugas"
)

const (
	StatusDone    = "Selesai"
	StatusPending = "Belum Selesai"
)

// ExportFileName is the download name of an exported workbook.
const ExportFileName = "My-Daily-Planner-Tasks.xlsx"

// ContentType is the MIME type of .xlsx files.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Kind tells the row mapper how to interpret a cell.
type Kind int

const (
	KindDate Kind = iota
	KindText
	KindHours
	KindStatus
)

// Column describes one spreadsheet column.
type Column struct {
	Header   string
	Kind     Kind
	Required bool
	Width    float64
}

// Columns is the ordered schema written on export and looked up by header
// on import.
var Columns = []Column{
	{Header: HeaderDate, Kind: KindDate, Required: true, Width: 12},
	{Header: HeaderText, Kind: KindText, Required: true, Width: minTextWidth},
	{Header: HeaderPlanningTime, Kind: KindHours, Width: 20},
	{Header: HeaderActualTime, Kind: KindHours, Width: 20},
	{Header: HeaderStatus, Kind: KindStatus, Width: 15},
	{Header: HeaderResultLink, Kind: KindText, Width: 30},
}

const (
	minTextWidth     = 20
	textWidthPadding = 5
)

var datePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// parseDate turns DD/MM/YYYY into a YYYY-MM-DD day-key.
func parseDate(raw string) (string, bool) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	return m[3] + "-" + m[2] + "-" + m[1], true
}

// parseHours reads a non-negative number of hours, 0 on anything else.
func parseHours(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseStatus(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), StatusDone)
}

func formatStatus(completed bool) string {
	if completed {
		return StatusDone
	}
	return StatusPending
}

// Headers returns the column headers in export order.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Header
	}
	return out
}
