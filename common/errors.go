package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrorInvalidValue    = errors.New("invalid value")
	ErrorInvalidArgument = errors.New("invalid argument")
)

// InvalidArgumentError names the parameter that was rejected.
// Allowed is only set when the parameter takes one of a closed set of values.
type InvalidArgumentError struct {
	Param   string
	Value   any
	Reason  string
	Allowed []string
}

func NewInvalidArgument(param string, value any, reason string, allowed ...string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Param:   param,
		Value:   value,
		Reason:  reason,
		Allowed: allowed,
	}
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("invalid argument %s: %s", e.Param, e.Reason)
	if e.Value != nil {
		msg = fmt.Sprintf("invalid argument %s=%v: %s", e.Param, e.Value, e.Reason)
	}
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrorInvalidArgument
}
