package http

import (
	"my-daily-planner/internal/dashboard"
	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

// --- Request DTOs ---

type rangeReq struct {
	Range string `json:"range" form:"range" binding:"required"`
}

func (r rangeReq) toRange() (datemath.Range, error) {
	return datemath.ParseRange(r.Range)
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

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{
			ID:           t.ID,
			Text:         t.Text,
			Completed:    t.Completed,
			PlanningTime: t.PlanningTime,
			ActualTime:   t.ActualTime,
			ResultLink:   t.ResultLink,
		}
	}
	return out
}

type totalsResp struct {
	Total           int     `json:"total"`
	Done            int     `json:"done"`
	Pending         int     `json:"pending"`
	TotalPlanning   float64 `json:"total_planning"`
	TotalActual     float64 `json:"total_actual"`
	TotalActualDone float64 `json:"total_actual_done"`
}

type pieSliceResp struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type barItemResp struct {
	Label  string  `json:"label"`
	Plan   float64 `json:"plan"`
	Actual float64 `json:"actual"`
}

type summaryResp struct {
	Range      string         `json:"range"`
	RangeLabel string         `json:"range_label"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Summary    totalsResp     `json:"summary"`
	Tasks      []taskResp     `json:"tasks"`
	Pending    []taskResp     `json:"pending"`
	Pie        []pieSliceResp `json:"pie"`
	Bar        []barItemResp  `json:"bar"`
	Analysis   string         `json:"analysis,omitempty"`
}

func (h *handler) newSummaryResp(out dashboard.SummaryOutput) summaryResp {
	s := out.Summary
	pie := make([]pieSliceResp, len(out.Pie))
	for i, p := range out.Pie {
		pie[i] = pieSliceResp{Label: p.Label, Value: p.Value, Color: p.Color}
	}
	bar := make([]barItemResp, len(out.Bar))
	for i, b := range out.Bar {
		bar[i] = barItemResp{Label: b.Label, Plan: b.Plan, Actual: b.Actual}
	}
	return summaryResp{
		Range:      string(out.Range),
		RangeLabel: datemath.RangeLabelID(out.Range),
		Start:      out.Start,
		End:        out.End,
		Summary: totalsResp{
			Total:           s.Total,
			Done:            s.Done,
			Pending:         s.Pending,
			TotalPlanning:   s.TotalPlanning,
			TotalActual:     s.TotalActual,
			TotalActualDone: s.TotalActualDone,
		},
		Tasks:    newTaskResps(s.Tasks),
		Pending:  newTaskResps(out.Pending),
		Pie:      pie,
		Bar:      bar,
		Analysis: out.Analysis,
	}
}

type analysisResp struct {
	Range    string `json:"range"`
	Analysis string `json:"analysis"`
}

func (h *handler) newAnalysisResp(out dashboard.AnalyzeOutput) analysisResp {
	return analysisResp{Range: string(out.Range), Analysis: out.Analysis}
}
