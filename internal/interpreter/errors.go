package interpreter

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeIO    = "IO_FAILURE"
	TextCodeStart = "INTERPRETER_START_FAILED"
)

func wrapIOError(err error, op string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, op).
		WithTextCode(TextCodeIO)
}

func wrapStartError(err error, shell string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "unable to start interpreter "+shell).
		WithTextCode(TextCodeStart)
}
