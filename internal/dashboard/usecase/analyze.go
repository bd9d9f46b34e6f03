package usecase

import (
	"context"
	"errors"

	"my-daily-planner/internal/dashboard"
	"my-daily-planner/pkg/datemath"
	"my-daily-planner/pkg/gemini"
)

// Analyze requests an AI narrative for the last summary of r. Only one
// request may be outstanding at a time.
func (uc *implUseCase) Analyze(ctx context.Context, r datemath.Range) (dashboard.AnalyzeOutput, error) {
	key := uc.stateKey(r)

	uc.mu.Lock()
	st, ok := uc.states.Get(key)
	uc.mu.Unlock()
	if !ok {
		return dashboard.AnalyzeOutput{}, dashboard.ErrSummaryRequired
	}

	if !uc.analyzing.CompareAndSwap(false, true) {
		return dashboard.AnalyzeOutput{}, dashboard.ErrAnalysisInProgress
	}
	defer uc.analyzing.Store(false)

	uc.setAnalysis(key, st.version, "", false)

	text, err := uc.generate(ctx, r, st)
	if err != nil {
		uc.setAnalysis(key, st.version, dashboard.AIErrorMessage(err), true)
		return dashboard.AnalyzeOutput{Range: r, Analysis: dashboard.AIErrorMessage(err)}, err
	}

	uc.setAnalysis(key, st.version, text, false)
	return dashboard.AnalyzeOutput{Range: r, Analysis: text}, nil
}

func (uc *implUseCase) generate(ctx context.Context, r datemath.Range, st viewState) (string, error) {
	if uc.ai == nil {
		return "", dashboard.ErrAINotConfigured
	}

	text, err := uc.ai.GenerateText(ctx, buildAnalysisPrompt(r, st.summary.Summary))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze GenerateText: %v", err)
		if errors.Is(err, gemini.ErrInvalidAPIKey) {
			return "", dashboard.ErrAIInvalidKey
		}
		return "", dashboard.ErrAIUnavailable
	}
	return text, nil
}

// setAnalysis records a narrative unless the summary it belongs to has been
// replaced in the meantime.
func (uc *implUseCase) setAnalysis(key string, version uint64, text string, failed bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	st, ok := uc.states.Peek(key)
	if !ok || st.version != version {
		return
	}
	st.analysis = text
	st.analysisFailed = failed
	st.summary.Analysis = text
	uc.states.Add(key, st)
}
