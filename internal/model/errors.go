package model

import "errors"

// ErrorKind identifies a terminal parse failure category.
type ErrorKind string

const (
	ErrFileNotFound      ErrorKind = "file_not_found"
	ErrInvalidFileType   ErrorKind = "invalid_file_type"
	ErrPasswordProtected ErrorKind = "password_protected"
	ErrNoHeaderFound     ErrorKind = "no_header_found"
	ErrNoDataFound       ErrorKind = "no_data_found"
	ErrOCRFailed         ErrorKind = "ocr_failed"
	ErrCorruptedFile     ErrorKind = "corrupted_file"
	ErrInternal          ErrorKind = "internal_error"
)

var defaultMessages = map[ErrorKind]string{
	ErrFileNotFound:      "File not found",
	ErrInvalidFileType:   "Invalid file type. Supported: .xlsx, .xls, .pdf",
	ErrPasswordProtected: "File is password protected",
	ErrNoHeaderFound:     "Could not identify header row in first 15 rows",
	ErrNoDataFound:       "No data rows found after header",
	ErrOCRFailed:         "OCR processing failed",
	ErrCorruptedFile:     "File appears to be corrupted",
	ErrInternal:          "Unexpected error",
}

// ParseError is the tagged error value crossing component boundaries.
// Kinds are terminal for the current file and never retried.
type ParseError struct {
	Kind    ErrorKind `json:"error"`
	Message string    `json:"message"`
}

// NewParseError builds a ParseError, falling back to the kind's default
// message when message is empty.
func NewParseError(kind ErrorKind, message string) *ParseError {
	if message == "" {
		message = defaultMessages[kind]
	}
	return &ParseError{Kind: kind, Message: message}
}

func (e *ParseError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// AsParseError unwraps err into a *ParseError if it carries one.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
