package sheet_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"my-daily-planner/internal/model"
	"my-daily-planner/internal/sheet"
)

func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func january() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func TestExportRows_OrderAndMonthFilter(t *testing.T) {
	tm := model.TaskMap{
		"2024-01-10": {
			{ID: "a", Text: "Tulis laporan", PlanningTime: 2, ActualTime: 2, Completed: true, ResultLink: "https://x"},
			{ID: "b", Text: "Rapat", PlanningTime: 1},
		},
		"2024-01-02": {{ID: "c", Text: "Belanja", PlanningTime: 0.5}},
		"2024-02-01": {{ID: "d", Text: "Bulan lain"}},
	}

	rows, err := sheet.ExportRows(tm, january())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "02/01/2024", rows[0].Date)
	assert.Equal(t, "Belanja", rows[0].Text)
	assert.Equal(t, "Tulis laporan", rows[1].Text)
	assert.Equal(t, sheet.StatusDone, rows[1].Status)
	assert.Equal(t, "Rapat", rows[2].Text)
	assert.Equal(t, sheet.StatusPending, rows[2].Status)
}

func TestExportRows_NothingToExport(t *testing.T) {
	tm := model.TaskMap{"2024-02-01": {{ID: "d", Text: "Bulan lain"}}}

	_, err := sheet.ExportRows(tm, january())
	assert.ErrorIs(t, err, sheet.ErrNothingToExport)
}

func TestImportRows_Validation(t *testing.T) {
	records := []sheet.Record{
		{sheet.HeaderDate: "2024/01/05", sheet.HeaderText: "Salah format"},
		{sheet.HeaderDate: "05/01/2024", sheet.HeaderText: "   "},
		{sheet.HeaderDate: "05/01/2024", sheet.HeaderText: "Valid", sheet.HeaderStatus: " selesai ",
			sheet.HeaderPlanningTime: "1.5", sheet.HeaderActualTime: "abc", sheet.HeaderResultLink: "  https://hasil  "},
		{sheet.HeaderDate: "31/02/2024", sheet.HeaderText: "Tanggal tidak ada"},
	}

	res, err := sheet.ImportRows(records, seqID())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 3, res.Skipped)

	tasks := res.Tasks["2024-01-05"]
	require.Len(t, tasks, 1)
	assert.Equal(t, model.Task{
		ID:           "id-1",
		Text:         "Valid",
		Completed:    true,
		PlanningTime: 1.5,
		ActualTime:   0,
		ResultLink:   "  https://hasil  ",
	}, tasks[0])
}

func TestImportRows_StatusOtherThanSelesaiIsPending(t *testing.T) {
	records := []sheet.Record{
		{sheet.HeaderDate: "05/01/2024", sheet.HeaderText: "A", sheet.HeaderStatus: "Belum Selesai"},
		{sheet.HeaderDate: "05/01/2024", sheet.HeaderText: "B"},
	}
	res, err := sheet.ImportRows(records, seqID())
	require.NoError(t, err)
	for _, task := range res.Tasks["2024-01-05"] {
		assert.False(t, task.Completed, task.Text)
	}
}

func TestImportRows_NoValidRows(t *testing.T) {
	records := []sheet.Record{{sheet.HeaderDate: "2024-01-05", sheet.HeaderText: "x"}}

	res, err := sheet.ImportRows(records, seqID())
	assert.ErrorIs(t, err, sheet.ErrNoValidRows)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Tasks)
}

func TestMerge_AppendsWithoutDedupe(t *testing.T) {
	tm := model.TaskMap{"2024-01-05": {{ID: "old", Text: "A"}}}
	sheet.Merge(tm, model.TaskMap{"2024-01-05": {{ID: "new", Text: "A"}}, "2024-01-06": {{ID: "n2"}}})

	require.Len(t, tm["2024-01-05"], 2)
	assert.Equal(t, "old", tm["2024-01-05"][0].ID)
	assert.Equal(t, "new", tm["2024-01-05"][1].ID)
	assert.Len(t, tm["2024-01-06"], 1)
}

func TestXLSX_RoundTrip(t *testing.T) {
	orig := model.TaskMap{
		"2024-01-10": {
			{ID: "a", Text: "Tulis laporan", PlanningTime: 2, ActualTime: 2.5, Completed: true, ResultLink: "https://docs/1"},
			{ID: "b", Text: "Rapat", PlanningTime: 1.0 / 3.0, ActualTime: 2.0 / 7.0},
		},
		"2024-01-31": {{ID: "c", Text: "Review", PlanningTime: 0.25, ActualTime: 0.5, Completed: true, ResultLink: " https://docs/2 "}},
	}

	rows, err := sheet.ExportRows(orig, january())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf, sheet.SheetName(january()), rows))

	records, err := sheet.ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 3)

	res, err := sheet.ImportRows(records, seqID())
	require.NoError(t, err)
	require.Equal(t, 3, res.Accepted)

	for key, tasks := range orig {
		got := res.Tasks[key]
		require.Len(t, got, len(tasks), key)
		for i, want := range tasks {
			assert.NotEqual(t, want.ID, got[i].ID)
			assert.Equal(t, want.Text, got[i].Text)
			assert.Equal(t, want.PlanningTime, got[i].PlanningTime)
			assert.Equal(t, want.ActualTime, got[i].ActualTime)
			assert.Equal(t, want.Completed, got[i].Completed)
			assert.Equal(t, want.ResultLink, got[i].ResultLink)
		}
	}
}

func TestWriteXLSX_SheetLayout(t *testing.T) {
	rows := []sheet.Row{{Date: "10/01/2024", Text: "Tugas yang namanya cukup panjang sekali", Status: sheet.StatusPending}}

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf, "Tugas Januari", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Tugas Januari"}, f.GetSheetList())

	header, err := f.GetRows("Tugas Januari")
	require.NoError(t, err)
	assert.Equal(t, sheet.Headers(), header[0])

	width, err := f.GetColWidth("Tugas Januari", "B")
	require.NoError(t, err)
	assert.Equal(t, float64(len("Tugas yang namanya cukup panjang sekali")+5), width)

	width, err = f.GetColWidth("Tugas Januari", "A")
	require.NoError(t, err)
	assert.Equal(t, float64(12), width)
}

func TestReadWorkbook_ColumnOrderIndependent(t *testing.T) {
	f := excelize.NewFile()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(name, "A1", &[]interface{}{"Status", "Tugas", "Tanggal"}))
	require.NoError(t, f.SetSheetRow(name, "A2", &[]interface{}{"Selesai", "Olahraga", "05/01/2024"}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	records, err := sheet.ReadWorkbook(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)

	res, err := sheet.ImportRows(records, seqID())
	require.NoError(t, err)
	assert.True(t, res.Tasks["2024-01-05"][0].Completed)
}

func TestReadWorkbook_LegacyXLS(t *testing.T) {
	f, err := os.Open("testdata/tasks.xls")
	require.NoError(t, err)
	defer f.Close()

	records, err := sheet.ReadWorkbook(f)
	require.NoError(t, err)
	require.Len(t, records, 3)

	res, err := sheet.ImportRows(records, seqID())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 1, res.Skipped)

	assert.Equal(t, []model.Task{{
		ID:           "id-1",
		Text:         "Tulis laporan",
		Completed:    true,
		PlanningTime: 1.5,
		ActualTime:   1.0 / 3.0,
		ResultLink:   "https://example.com/laporan",
	}}, res.Tasks["2024-01-05"])
	assert.Equal(t, []model.Task{{
		ID:           "id-2",
		Text:         "Rapat tim",
		PlanningTime: 2,
	}}, res.Tasks["2024-01-06"])
}

func TestReadWorkbook_LegacyXLSBrokenChain(t *testing.T) {
	data, err := os.ReadFile("testdata/tasks.xls")
	require.NoError(t, err)

	// FAT entry of workbook sector 4 now links past the end of the table.
	broken := bytes.Clone(data)
	binary.LittleEndian.PutUint32(broken[512+4*4:], 0x10000)

	_, err = sheet.ReadWorkbook(bytes.NewReader(broken))
	assert.ErrorIs(t, err, sheet.ErrUnreadableFile)
}

func TestReadWorkbook_Unreadable(t *testing.T) {
	brokenOLE := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 512)...)
	_, err := sheet.ReadWorkbook(bytes.NewReader(brokenOLE))
	assert.ErrorIs(t, err, sheet.ErrUnreadableFile)

	_, err = sheet.ReadWorkbook(bytes.NewReader([]byte("not a workbook")))
	assert.ErrorIs(t, err, sheet.ErrUnreadableFile)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Tugas Agustus", sheet.SheetName(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
}
