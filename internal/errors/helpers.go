package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// ServiceStatus returns the upstream HTTP status recorded on a service error,
// or 0 when the error carries none.
func ServiceStatus(err error) int {
	status, ok := GetMeta(err)[MetaStatus].(int)
	if !ok {
		return 0
	}
	return status
}

// IsTimeout reports whether a transport error was caused by a deadline
func IsTimeout(err error) bool {
	timeout, ok := GetMeta(err)[MetaTimeout].(bool)
	return ok && timeout
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsService checks if an error is an unexpected upstream status
func IsService(err error) bool {
	return GetCode(err) == CodeService
}

// IsTransport checks if an error is a network or timeout failure
func IsTransport(err error) bool {
	return GetCode(err) == CodeTransport
}

// IsMalformedData checks if an error is a malformed response error
func IsMalformedData(err error) bool {
	return GetCode(err) == CodeMalformedData
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
