package usecase

import (
	"fmt"

	"my-daily-planner/internal/model"
	"my-daily-planner/pkg/datemath"
)

const analysisPromptTemplate = `Anda adalah seorang asisten produktivitas yang ahli dengan gaya bahasa yang ringan, lugas, dan mudah dimengerti.
Berdasarkan data berikut untuk rentang waktu "%s":
- Total tugas: %d
- Tugas selesai: %d
- Tugas tertunda: %d
- Total waktu perencanaan: %.1f jam
- Total waktu aktual yang dihabiskan: %.1f jam
- Waktu aktual pada tugas yang selesai: %.1f jam

Berikan analisis singkat dan saran yang bisa ditindaklanjuti.
Gunakan format di bawah ini secara persis, langsung ke intinya, dan jangan gunakan bullet points. Setiap poin harus di baris baru.

Hasil Analisa :
[Analisa perbandingan rencana vs realita]
[Analisa beban kerja]

Saran :
[Saran untuk meningkatkan akurasi perencanaan]
[Saran untuk meningkatkan produktivitas]`

// buildAnalysisPrompt renders the narrative request for a summary.
func buildAnalysisPrompt(r datemath.Range, s model.Summary) string {
	return fmt.Sprintf(analysisPromptTemplate,
		datemath.RangeLabelID(r),
		s.Total, s.Done, s.Pending,
		s.TotalPlanning, s.TotalActual, s.TotalActualDone,
	)
}
