package dashboard

import "errors"

// Domain-specific errors for the dashboard package.
var (
	ErrInvalidRange       = errors.New("unknown range")
	ErrSummaryRequired    = errors.New("summary has not been generated for this range")
	ErrAnalysisInProgress = errors.New("an analysis is already running")
	ErrAINotConfigured    = errors.New("ai api key is not configured")
	ErrAIInvalidKey       = errors.New("ai api key is invalid")
	ErrAIUnavailable      = errors.New("ai service unavailable")
)

// Messages shown to the user in place of an AI narrative.
const (
	MsgAINotConfigured = "Kunci API Gemini tidak dikonfigurasi. Harap atur variabel lingkungan API_KEY."
	MsgAIInvalidKey    = "Kunci API Gemini yang disediakan tidak valid. Silakan periksa kembali."
	MsgAIUnavailable   = "Gagal berkomunikasi dengan layanan AI. Pastikan Kunci API Anda benar dan coba lagi."
)

// AIErrorMessage maps an AI failure to its user-facing message.
func AIErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrAINotConfigured):
		return MsgAINotConfigured
	case errors.Is(err, ErrAIInvalidKey):
		return MsgAIInvalidKey
	default:
		return MsgAIUnavailable
	}
}
