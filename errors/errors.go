package errors

import (
	"errors"
)

type Code string

const (
	CodeNotFound    Code = "not_found"
	CodeDuplicate   Code = "duplicate"
	CodeBadRequest  Code = "bad_request"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

var (
	NotFound            = Error{CodeNotFound, errors.New("not found")}
	Duplicate           = Error{CodeDuplicate, errors.New("duplicate")}
	BadRequest          = Error{CodeBadRequest, errors.New("bad request")}
	Unavailable         = Error{CodeUnavailable, errors.New("unavailable")}
	InternalServerError = Error{CodeInternal, errors.New("internal server error")}
)

type Error struct {
	Code Code
	Err  error
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	return e.Err.Error()
}

// Is reports whether target is the base sentinel of the same kind, so
// patients.ErrNotFound satisfies errors.Is(err, NotFound). Two wrapped
// sentinels only match when they are the same value.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	switch t {
	case NotFound, Duplicate, BadRequest, Unavailable, InternalServerError:
		return t.Code == e.Code
	}
	return false
}

// Wrap returns a sentinel of the given kind with a more specific message.
func Wrap(kind Error, message string) Error {
	return Error{Code: kind.Code, Err: errors.New(kind.Err.Error() + ": " + message)}
}

func CodeOf(err error) Code {
	e := Error{}
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
