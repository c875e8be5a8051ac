package app

import "github.com/ayoisaiah/fractal/internal/apperr"

var (
	errSessionRequired = &apperr.Error{
		Message: "the %s command needs a session: pass --session <id>",
	}

	errSessionNotFound = &apperr.Error{
		Message: "no session with id %q in %s",
	}

	errNoDataPath = &apperr.Error{
		Message: "no export file configured: pass --data or set data.path in %s",
	}
)
