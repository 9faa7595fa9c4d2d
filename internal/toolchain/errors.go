package toolchain

import "errors"

var (
	ErrTool          = errors.New("tool invocation failed")
	ErrCommandFailed = errors.New("command failed")
)
