package liferestart

import (
	"errors"
	"fmt"

	"github.com/lox/liferestart/condition"
)

// ErrInvalidCondition is re-exported so callers can errors.Is against it
// without importing the condition package directly. It is the one fatal
// error kind Simulate can return: a malformed condition string anywhere in
// the catalogue aborts the run.
var ErrInvalidCondition = condition.ErrInvalidCondition

// wrapConditionErr attaches the offending catalogue context (a talent,
// event, or achievement id) to a condition parse failure before it bubbles
// out of Simulate.
func wrapConditionErr(context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// IsInvalidCondition reports whether err is (or wraps) ErrInvalidCondition.
func IsInvalidCondition(err error) bool {
	return errors.Is(err, ErrInvalidCondition)
}
