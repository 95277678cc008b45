package zexpr

import "errors"

// The five error categories from the failure taxonomy. Construction errors
// (Typing, Parameter, Parse) are returned synchronously by builders. Usage is
// returned by New for a non-discrete root and by Schedule.Next on a zero-value
// Schedule; NoMatch is returned from Schedule.Next. Use errors.Is against
// these sentinels rather than comparing messages.
var (
	ErrTyping    = errors.New("typing error")
	ErrParameter = errors.New("parameter error")
	ErrParse     = errors.New("parse error")
	ErrUsage     = errors.New("usage error")
	ErrNoMatch   = errors.New("no match within horizon")
)
