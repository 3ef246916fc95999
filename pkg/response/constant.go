package response

import "time"

const (
	DateTimeFormat = time.RFC3339

	msgValidationFailed = "Validation failed"
	msgInternal         = "Internal server error"
)
