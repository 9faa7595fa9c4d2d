package pipeline

import "errors"

var (
	ErrStep       = errors.New("step failed")
	ErrTransition = errors.New("invalid status transition")
	ErrOptions    = errors.New("invalid pipeline options")
)
