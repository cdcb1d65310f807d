package exppager

import "errors"

// ErrInvalidArgument is returned when a setter or constructor receives a value
// violating its range contract. Check with errors.Is.
//
// An out-of-range current page is NOT an invalid argument: it is silently
// clamped into [FirstPage, LastPage].
var ErrInvalidArgument = errors.New("invalid argument")
