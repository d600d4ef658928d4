package pkg

import "fmt"

// AppError is the error shape handlers turn into JSON responses.
//
// Code is a stable machine-readable identifier, Message is safe to show to end
// users. Err keeps the underlying cause and is only exposed by ToDebugHTTPError.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

// HTTPError is the JSON body returned for every failed request.
type HTTPError struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Debug      string `json:"debug,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches upstream context (e.g. the gateway error body) to the response.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{
		Error:   e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	if e.Details != nil {
		out.StatusCode = e.HTTPStatus
	}
	return out
}

// ToDebugHTTPError is ToHTTPError plus the wrapped cause. Only for non-production modes.
func (e *AppError) ToDebugHTTPError() HTTPError {
	out := e.ToHTTPError()
	if e.Err != nil {
		out.Debug = e.Err.Error()
	}
	return out
}
