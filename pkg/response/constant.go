package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Internal server error"
	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
