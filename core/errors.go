package core

import (
	"errors"
	"fmt"
	"path/filepath"
)

// FatalError is raised when a structural precondition of the pack is not met
// (missing required directories or files) or the pre-fix backup fails. The
// run cannot continue; the operator has to correct the pack layout and invoke
// the tool again.
type FatalError struct {
	msg string
}

func (e *FatalError) Error() string {
	return e.msg
}

func Fatalf(format string, a ...interface{}) error {
	return &FatalError{msg: fmt.Sprintf(format, a...)}
}

func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// NoQuickFixError is raised when document content is detectably wrong but the
// intended content cannot be inferred, so no automatic fix is offered. The
// operator is expected to repair the file by hand and run the check again.
type NoQuickFixError struct {
	msg string
}

func (e *NoQuickFixError) Error() string {
	return e.msg
}

func NoQuickFixf(format string, a ...interface{}) error {
	return &NoQuickFixError{msg: fmt.Sprintf(format, a...)}
}

func IsNoQuickFix(err error) bool {
	var nqf *NoQuickFixError
	return errors.As(err, &nqf)
}

// ResolvePath makes path absolute for error messages, falling back to the
// input when resolution fails.
func ResolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
