package shop

import "errors"

// ErrInvalidCredentials is returned on any owner sign-in failure; it does not
// distinguish an unknown identifier from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")
