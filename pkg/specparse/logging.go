package specparse

import "log"

// logger follows the ambient convention of the rest of this codebase:
// the standard library "log" package, invoked directly from deep
// inside a parsing path rather than threaded through every call.
var logger = log.Default()
