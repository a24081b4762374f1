package repository

import "errors"

// ErrorKind classifies a business error so the API layer can map it onto a
// wire status code without string matching.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindValidationFailed
	KindConflict
	KindForbidden
	KindInternal
)

type ApplicationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) *ApplicationError {
	return &ApplicationError{Kind: KindNotFound, Message: message}
}

func NewValidationFailed(message string) *ApplicationError {
	return &ApplicationError{Kind: KindValidationFailed, Message: message}
}

func NewConflict(message string) *ApplicationError {
	return &ApplicationError{Kind: KindConflict, Message: message}
}

func NewForbidden(message string) *ApplicationError {
	return &ApplicationError{Kind: KindForbidden, Message: message}
}

// KindOf extracts the classification, defaulting to internal for anything
// that is not an ApplicationError (driver failures and the like).
func KindOf(err error) ErrorKind {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	var appErr *ApplicationError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
