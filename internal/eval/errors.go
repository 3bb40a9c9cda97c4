package eval

import "errors"

var (
	// ErrUnknownOp is returned when no operation matches a name or alias.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned when the argument count does not match.
	ErrArity = errors.New("wrong number of arguments")
	// ErrArgument is returned when an argument does not parse or is out of
	// range for its width.
	ErrArgument = errors.New("invalid argument")
	// ErrPrecondition is returned for input the library leaves undefined.
	ErrPrecondition = errors.New("precondition violated")
	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("unknown format")
)
