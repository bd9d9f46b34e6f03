package http

import (
	"errors"
	"net/http"

	"my-daily-planner/internal/sheet"
	"my-daily-planner/internal/task"
	pkgErrors "my-daily-planner/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Data yang dikirim tidak valid.")
	errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "File spreadsheet wajib diunggah (field \"file\").")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Teks tugas tidak boleh kosong.")
	case errors.Is(err, task.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Input tidak valid. Harap masukkan angka positif.")
	case errors.Is(err, task.ErrActualTimeRequired):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Masukkan waktu aktual (jam) untuk tugas ini.")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tugas tidak ditemukan.")
	case errors.Is(err, task.ErrInvalidDayKey):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Tanggal harus berformat YYYY-MM-DD.")
	case errors.Is(err, task.ErrInvalidMonth):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Bulan harus berformat YYYY-MM.")
	case errors.Is(err, sheet.ErrNothingToExport):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tidak ada tugas untuk diunduh pada bulan ini.")
	case errors.Is(err, sheet.ErrNoValidRows):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity,
			"Tidak ada tugas valid di file. Kolom wajib: 'Tanggal', 'Tugas', 'Status', 'Planning Time (jam)', 'Actual Time (jam)', 'Link Hasil Tugas'. 'Tanggal' harus berformat DD/MM/YYYY.")
	case errors.Is(err, sheet.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "Format file tidak didukung. Gunakan .xlsx atau .xls.")
	case errors.Is(err, sheet.ErrUnreadableFile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Gagal mengimpor tugas. File mungkin rusak atau formatnya salah.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
