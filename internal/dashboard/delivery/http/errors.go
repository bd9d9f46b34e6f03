package http

import (
	"errors"
	"net/http"

	"my-daily-planner/internal/dashboard"
	pkgErrors "my-daily-planner/pkg/errors"
)

var errInvalidRange = pkgErrors.NewHTTPError(http.StatusBadRequest, "Rentang tidak valid. Gunakan yesterday, today, last-7-days, atau this-month.")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidRange):
		return errInvalidRange
	case errors.Is(err, dashboard.ErrSummaryRequired):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Silakan hasilkan ringkasan terlebih dahulu.")
	case errors.Is(err, dashboard.ErrAnalysisInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Analisis sedang diproses.")
	case errors.Is(err, dashboard.ErrAINotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, dashboard.MsgAINotConfigured)
	case errors.Is(err, dashboard.ErrAIInvalidKey):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, dashboard.MsgAIInvalidKey)
	case errors.Is(err, dashboard.ErrAIUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, dashboard.MsgAIUnavailable)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
