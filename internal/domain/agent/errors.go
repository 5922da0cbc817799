package agent

import "errors"

var (
	ErrRunNotFound = errors.New("analysis run not found")
)
