package signature

import "errors"

// ErrIntrospection is returned when the parameter list of a callable cannot be determined.
var ErrIntrospection = errors.New("cannot determine parameter list")
