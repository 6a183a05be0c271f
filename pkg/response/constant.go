package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage is the message for unexpected failures.
	DefaultErrorMessage = "Something went wrong"
)

const (
	// ValidationErrorCode is the envelope code for validation failures.
	ValidationErrorCode = 400
	// ValidationErrorMsg is the envelope message for validation failures.
	ValidationErrorMsg = "Validation failed"
	// PermissionErrorCode is the envelope code for permission failures.
	PermissionErrorCode = 403
	// PermissionErrorMsg is the envelope message for permission failures.
	PermissionErrorMsg = "Permission denied"
	// InternalServerErrorCode is the envelope code for unexpected failures.
	InternalServerErrorCode = 500
)
