package model

import "sort"

// Task is a single checklist entry on a planner day.
type Task struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Completed    bool    `json:"completed"`
	PlanningTime float64 `json:"planningTime"` // hours
	ActualTime   float64 `json:"actualTime"`   // hours, 0 means unset
	ResultLink   string  `json:"resultLink,omitempty"`
}

// TaskMap buckets tasks by day-key (YYYY-MM-DD). Slice order is display order.
type TaskMap map[string][]Task

// Clone returns a deep copy so callers can build the next value of the store.
func (m TaskMap) Clone() TaskMap {
	out := make(TaskMap, len(m))
	for k, tasks := range m {
		cp := make([]Task, len(tasks))
		copy(cp, tasks)
		out[k] = cp
	}
	return out
}

// Prune drops day-keys without tasks.
func (m TaskMap) Prune() TaskMap {
	for k, tasks := range m {
		if len(tasks) == 0 {
			delete(m, k)
		}
	}
	return m
}

// Count returns the number of tasks across all days.
func (m TaskMap) Count() int {
	n := 0
	for _, tasks := range m {
		n += len(tasks)
	}
	return n
}

// SortedKeys returns the day-keys in ascending order.
func (m TaskMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
