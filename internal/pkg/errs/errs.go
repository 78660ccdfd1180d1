package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin veneer over cockroachdb/errors: usecases Mark failures with a
// classification sentinel, handlers branch on it with errors.Is.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an errors.Is target without changing the
// message chain of err.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
