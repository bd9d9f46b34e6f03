package model

// Summary aggregates a task list. It is derived on demand and never persisted.
type Summary struct {
	Tasks           []Task
	Total           int
	Done            int
	Pending         int
	TotalPlanning   float64
	TotalActual     float64
	TotalActualDone float64
}
