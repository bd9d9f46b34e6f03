package usecase

import (
	"context"
	"fmt"
	"strings"

	"my-daily-planner/internal/dashboard"
	"my-daily-planner/pkg/datemath"
)

const reportRule = "=============================================="

// Report renders the last summary of r, plus its narrative when one was
// produced successfully.
func (uc *implUseCase) Report(ctx context.Context, r datemath.Range) (dashboard.ReportOutput, error) {
	uc.mu.Lock()
	st, ok := uc.states.Get(uc.stateKey(r))
	uc.mu.Unlock()
	if !ok {
		return dashboard.ReportOutput{}, dashboard.ErrSummaryRequired
	}

	return dashboard.ReportOutput{
		FileName: fmt.Sprintf("Ringkasan-Kegiatan-%s.txt", r),
		Content:  renderReport(r, st),
	}, nil
}

func renderReport(r datemath.Range, st viewState) string {
	s := st.summary.Summary
	var sb strings.Builder

	fmt.Fprintf(&sb, "Ringkasan Kinerja - Rentang: %s\n", r)
	sb.WriteString(reportRule + "\n\n")

	sb.WriteString("STATUS TUGAS\n")
	fmt.Fprintf(&sb, "- jumlah task: %d\n", s.Total)
	fmt.Fprintf(&sb, "- total selesai: %d\n", s.Done)
	fmt.Fprintf(&sb, "- total tertunda: %d\n\n", s.Pending)

	sb.WriteString("TUGAS YANG TERTUNDA:\n")
	pending := dashboard.PendingTasks(s)
	if len(pending) == 0 {
		sb.WriteString("(Tidak ada tugas yang tertunda)\n")
	}
	for _, t := range pending {
		fmt.Fprintf(&sb, "- %s\n", t.Text)
	}
	sb.WriteString("\n")

	sb.WriteString("KINERJA WAKTU\n")
	fmt.Fprintf(&sb, "- Total planning time: %.1f jam\n", s.TotalPlanning)
	fmt.Fprintf(&sb, "- Total actual time: %.1f jam\n", s.TotalActual)
	fmt.Fprintf(&sb, "- Selisih plan vs actual: %.1f jam\n", s.TotalPlanning-s.TotalActual)

	if analysis := strings.TrimSpace(st.analysis); analysis != "" && !st.analysisFailed {
		sb.WriteString("\n\n")
		sb.WriteString("ANALISA & SARAN DARI AI\n")
		sb.WriteString(reportRule + "\n")
		sb.WriteString(analysis + "\n")
	}

	return sb.String()
}
