package linkedin

import "errors"

// ErrNotLinked is returned by lookups that need the user's own network when
// no account session was supplied.
var ErrNotLinked = errors.New("linkedin: account not linked")
