package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeService         Code = "SERVICE_ERROR"
	CodeTransport       Code = "TRANSPORT_ERROR"
	CodeMalformedData   Code = "MALFORMED_DATA"
	CodeInternal        Code = "INTERNAL"
)

// Metadata keys attached by the fetch layers
const (
	MetaStatus  = "status"
	MetaURL     = "url"
	MetaTimeout = "timeout"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
