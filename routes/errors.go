package routes

import "errors"

var (
	// ErrNoRoute is returned by Recognize when no route matches a path.
	ErrNoRoute = errors.New("no route matches path")

	// ErrUnknownRoute is returned by URLFor for a name that was never
	// registered.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingVariable is returned when a path variable has no value in
	// the parameters or the route defaults.
	ErrMissingVariable = errors.New("missing route variable")

	// ErrInvalidVariable is returned when a path variable value does not
	// match its pattern.
	ErrInvalidVariable = errors.New("invalid route variable")

	// ErrInvalidHost is returned when URLOptions.Host cannot be converted
	// to an ASCII host name.
	ErrInvalidHost = errors.New("invalid host")
)
