package http

import (
	"my-daily-planner/internal/model"
	"my-daily-planner/internal/task"
)

// --- Request DTOs ---

type addReq struct {
	DayKey       string  `json:"-"`
	Text         string  `json:"text" binding:"required"`
	PlanningTime float64 `json:"planning_time"`
}

func (r addReq) toInput() task.AddInput {
	return task.AddInput{
		DayKey:       r.DayKey,
		Text:         r.Text,
		PlanningTime: r.PlanningTime,
	}
}

// ---

type updateReq struct {
	DayKey       string  `json:"-"`
	ID           string  `json:"-"`
	Text         string  `json:"text"`
	PlanningTime float64 `json:"planning_time"`
	ActualTime   float64 `json:"actual_time"`
	ResultLink   string  `json:"result_link"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		DayKey:       r.DayKey,
		ID:           r.ID,
		Text:         r.Text,
		PlanningTime: r.PlanningTime,
		ActualTime:   r.ActualTime,
		ResultLink:   r.ResultLink,
	}
}

// ---

type toggleReq struct {
	DayKey     string   `json:"-"`
	ID         string   `json:"-"`
	ActualTime *float64 `json:"actual_time"`
	ResultLink *string  `json:"result_link"`
}

func (r toggleReq) toInput() task.ToggleInput {
	return task.ToggleInput{
		DayKey:     r.DayKey,
		ID:         r.ID,
		ActualTime: r.ActualTime,
		ResultLink: r.ResultLink,
	}
}

// ---

type calendarReq struct {
	Month    string `form:"month"`
	Selected string `form:"selected"`
}

func (r calendarReq) toInput() task.CalendarInput {
	return task.CalendarInput{Month: r.Month, Selected: r.Selected}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Completed    bool    `json:"completed"`
	PlanningTime float64 `json:"planning_time"`
	ActualTime   float64 `json:"actual_time"`
	ResultLink   string  `json:"result_link,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Text:         t.Text,
		Completed:    t.Completed,
		PlanningTime: t.PlanningTime,
		ActualTime:   t.ActualTime,
		ResultLink:   t.ResultLink,
	}
}

type dayResp struct {
	Day           string     `json:"day"`
	Weekday       string     `json:"weekday"`
	DateLabel     string     `json:"date_label"`
	IsToday       bool       `json:"is_today"`
	Tasks         []taskResp `json:"tasks"`
	TotalPlanning float64    `json:"total_planning"`
	TotalActual   float64    `json:"total_actual"`
	Progress      float64    `json:"progress"`
}

func (h *handler) newDayResp(out task.DayOutput) dayResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return dayResp{
		Day:           out.DayKey,
		Weekday:       out.Weekday,
		DateLabel:     out.DateLabel,
		IsToday:       out.IsToday,
		Tasks:         tasks,
		TotalPlanning: out.TotalPlanning,
		TotalActual:   out.TotalActual,
		Progress:      out.Progress,
	}
}

type taskMutationResp struct {
	Task taskResp `json:"task"`
	Day  dayResp  `json:"day"`
}

func (h *handler) newTaskMutationResp(out task.TaskOutput) taskMutationResp {
	return taskMutationResp{Task: newTaskResp(out.Task), Day: h.newDayResp(out.Day)}
}

type calendarDayResp struct {
	Day        string `json:"day"`
	Date       int    `json:"date"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	HasTasks   bool   `json:"has_tasks"`
}

type calendarResp struct {
	Month         string            `json:"month"`
	Label         string            `json:"label"`
	Weekdays      []string          `json:"weekdays"`
	LeadingBlanks int               `json:"leading_blanks"`
	Days          []calendarDayResp `json:"days"`
	PrevMonth     string            `json:"prev_month"`
	NextMonth     string            `json:"next_month"`
	Today         string            `json:"today"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	days := make([]calendarDayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = calendarDayResp{
			Day:        d.Key,
			Date:       d.Day,
			IsToday:    d.IsToday,
			IsSelected: d.IsSelected,
			HasTasks:   d.HasTasks,
		}
	}
	return calendarResp{
		Month:         out.Month,
		Label:         out.Label,
		Weekdays:      out.Weekdays,
		LeadingBlanks: out.LeadingBlanks,
		Days:          days,
		PrevMonth:     out.PrevMonth,
		NextMonth:     out.NextMonth,
		Today:         out.Today,
	}
}

type importResp struct {
	Accepted int      `json:"accepted"`
	Skipped  int      `json:"skipped"`
	Days     []string `json:"days"`
}

func (h *handler) newImportResp(out task.ImportOutput) importResp {
	return importResp{Accepted: out.Accepted, Skipped: out.Skipped, Days: out.Days}
}
