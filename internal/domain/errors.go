package domain

import "errors"

// ErrNoResults reports that a base store query returned zero records. It is
// the only store condition the handlers translate to a 404; every other
// store failure stays a plain error and surfaces as a server error.
var ErrNoResults = errors.New("no matching records found")
