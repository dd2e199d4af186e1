package dto

import (
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
)

// Result is the envelope every query operation answers with. Exactly one of
// Data and Error is set.
type Result struct {
	Success bool             `json:"success"`
	Data    any              `json:"data"`
	Error   *appErrors.Error `json:"error"`
}

// Success wraps a payload in a successful envelope.
func Success(data any) Result {
	return Result{Success: true, Data: data}
}

// Failure wraps an error in a failed envelope.
func Failure(err *appErrors.Error) Result {
	if err == nil {
		err = appErrors.ErrInternal
	}
	return Result{Error: err}
}

// Code returns the error code of a failed envelope, or "" on success.
func (r Result) Code() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Code
}
