package dashboard

import (
	"context"

	"my-daily-planner/pkg/datemath"
)

// UseCase defines the business logic interface for the dashboard domain.
type UseCase interface {
	// Summarize aggregates the tasks of r and resets any narrative for it.
	Summarize(ctx context.Context, r datemath.Range) (SummaryOutput, error)

	// Analyze asks the AI service for a narrative of the last summary of r.
	Analyze(ctx context.Context, r datemath.Range) (AnalyzeOutput, error)

	// Report renders the last summary of r as plain text.
	Report(ctx context.Context, r datemath.Range) (ReportOutput, error)
}
