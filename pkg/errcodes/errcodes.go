package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	InvalidGrade   failure.ErrorCode = "InvalidGrade"
	InvalidVariant failure.ErrorCode = "InvalidVariant"
	InvalidFormat  failure.ErrorCode = "InvalidFormat"
	InvalidRecord  failure.ErrorCode = "InvalidRecord"
)
