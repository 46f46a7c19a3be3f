package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfigIncomplete  = errors.New("completion config incomplete")
	ErrTruncatedResponse = errors.New("response truncated by output token limit")
	ErrEmptyResponse     = errors.New("no usable content in response")
	ErrActiveRequest     = errors.New("active request exists")
)

// UpstreamError carries the provider's rejection verbatim so it can be
// surfaced for debugging.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Body)
}
