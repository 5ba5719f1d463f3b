package application

import "log/slog"

// resolveLogger guarantees a non-nil logger for application code paths.
func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
