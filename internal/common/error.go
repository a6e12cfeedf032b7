package common

import "fmt"

// Error kinds the core distinguishes for callers. Everything raised by the
// pipeline wraps exactly one of these, so the CLI can tell bad input apart
// from engine and disk failures with errors.Is.
var (
	ErrInvalidTimeFormat = fmt.Errorf("invalid time format")
	ErrInvalidTrimRange  = fmt.Errorf("invalid trim range")
	ErrInvalidRange      = fmt.Errorf("invalid playlist range")
	ErrMediaUnavailable  = fmt.Errorf("media unavailable")
	ErrEngineFailure     = fmt.Errorf("engine failure")
	ErrFilesystem        = fmt.Errorf("filesystem error")
)
