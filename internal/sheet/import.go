package sheet

import (
	"strings"

	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

// Record is one data row keyed by header.
type Record map[string]string

// ImportResult is the outcome of mapping records to tasks.
type ImportResult struct {
	Tasks    model.TaskMap
	Accepted int
	Skipped  int
}

// ImportRows maps records to tasks grouped by day-key, preserving row order.
// Rows without a DD/MM/YYYY date or without task text are skipped. newID
// mints the identifier of every accepted task.
func ImportRows(records []Record, newID func() string) (ImportResult, error) {
	res := ImportResult{Tasks: model.TaskMap{}}
	for _, rec := range records {
		key, task, ok := mapRecord(rec)
		if !ok {
			res.Skipped++
			continue
		}
		task.ID = newID()
		res.Tasks[key] = append(res.Tasks[key], task)
		res.Accepted++
	}
	if res.Accepted == 0 {
		return res, ErrNoValidRows
	}
	return res, nil
}

func mapRecord(rec Record) (string, model.Task, bool) {
	var (
		key  string
		task model.Task
	)
	for _, col := range Columns {
		raw := rec[col.Header]
		switch col.Kind {
		case KindDate:
			k, ok := parseDate(raw)
			if !ok {
				return "", model.Task{}, false
			}
			if _, err := datemath.ParseDayKey(k); err != nil {
				return "", model.Task{}, false
			}
			key = k
		case KindText:
			v := strings.TrimSpace(raw)
			if col.Required && v == "" {
				return "", model.Task{}, false
			}
			switch col.Header {
			case HeaderText:
				task.Text = v
			case HeaderResultLink:
				task.ResultLink = raw
			}
		case KindHours:
			switch col.Header {
			case HeaderPlanningTime:
				task.PlanningTime = parseHours(raw)
			case HeaderActualTime:
				task.ActualTime = parseHours(raw)
			}
		case KindStatus:
			task.Completed = parseStatus(raw)
		}
	}
	return key, task, true
}

// Merge appends every imported day list to the matching list of tm.
func Merge(tm, imported model.TaskMap) {
	for _, key := range imported.SortedKeys() {
		tm[key] = append(tm[key], imported[key]...)
	}
}
