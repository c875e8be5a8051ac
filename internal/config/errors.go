package config

import "github.com/ayoisaiah/fractal/internal/apperr"

var (
	errResolvePath = &apperr.Error{
		Message: "unable to resolve fractal file paths",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidInterval = &apperr.Error{
		Message: "clock interval must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max_size_mb must be at least 1, got %d",
	}

	errInvalidNow = &apperr.Error{
		Message: "unable to understand --now value %q",
	}
)
