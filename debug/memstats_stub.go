//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op outside Windows; RSS is queried through psapi.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
