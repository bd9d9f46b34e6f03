package usecase

import (
	"context"
	"fmt"

	"my-daily-planner/internal/dashboard"
	"my-daily-planner/pkg/datemath"
)

// Summarize aggregates the tasks of r and replaces the cached view for it.
func (uc *implUseCase) Summarize(ctx context.Context, r datemath.Range) (dashboard.SummaryOutput, error) {
	span, err := datemath.ResolveRange(r, uc.clock.Today())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Summarize ResolveRange: %v", err)
		return dashboard.SummaryOutput{}, fmt.Errorf("%w: %s", dashboard.ErrInvalidRange, r)
	}

	summary := dashboard.Aggregate(dashboard.TasksInRange(uc.store.Snapshot(), span))
	out := dashboard.SummaryOutput{
		Range:   r,
		Start:   datemath.DayKey(span.Start),
		End:     datemath.DayKey(span.End),
		Summary: summary,
		Pending: dashboard.PendingTasks(summary),
		Pie:     dashboard.PieData(summary),
		Bar:     dashboard.BarData(summary),
	}

	uc.mu.Lock()
	uc.version++
	uc.states.Add(uc.stateKey(r), viewState{version: uc.version, summary: out})
	uc.mu.Unlock()

	uc.l.Infof(ctx, "uc.Summarize: range=%s [%s..%s] total=%d done=%d", r, out.Start, out.End, summary.Total, summary.Done)
	return out, nil
}
