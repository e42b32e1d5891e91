package sll

import "errors"

// Failures wrap one of these sentinels; test with errors.Is.
var (
	// ErrIndexOutOfRange reports an index below zero or at or beyond the
	// list length.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmpty reports Last or LastSublist on a zero-length list.
	ErrEmpty = errors.New("empty list")
	// ErrNegativeRepeat reports a negative count passed to Repeat.
	ErrNegativeRepeat = errors.New("negative repeat count")
)
