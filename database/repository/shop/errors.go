package shopRepo

import "errors"

// ErrNotFound is returned when no shop matches the lookup.
var ErrNotFound = errors.New("shop not found")
