package services

import (
	"errors"
	"fmt"

	"espoch-directory/docentes/internal/constants"
)

// DirectoryError is the typed failure every service operation surfaces. Code
// is one of the constants error codes; Message defaults to the code's table
// entry when empty.
type DirectoryError struct {
	Code    string
	Message string
	Err     error
}

func (e *DirectoryError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = constants.GetErrorMessage(e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// UserMessage returns the human-readable message without wrapped detail.
func (e *DirectoryError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return constants.GetErrorMessage(e.Code)
}

// ErrorCode extracts the directory error code from err, or "" when err is
// not a DirectoryError.
func ErrorCode(err error) string {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Code
	}
	return ""
}
