package response

const (
	MessageSuccess          = "Berhasil"
	DefaultErrorMessage     = "Terjadi kesalahan pada server"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)
