package cbf

import "errors"

var (
	ErrLaunchFailed   = errors.New("cbf: launch failed")
	ErrLengthMismatch = errors.New("cbf: output length does not match decoded element count")
	ErrTooLarge       = errors.New("cbf: stream length exceeds limit")
)
