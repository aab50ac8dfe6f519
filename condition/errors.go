package condition

import "errors"

// ErrInvalidCondition is the sentinel wrapped by every parse failure: an
// empty condition, unbalanced parentheses, an atom with no recognised
// operator, a missing value or one that still holds operator characters
// (such as "CHR>>5"), or a malformed array literal. Per the spec this is the one
// fatal error kind the engine surfaces to its caller; it is never retried.
var ErrInvalidCondition = errors.New("invalid condition")
