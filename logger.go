// logger.go
// Package textquality provides shared utilities for the go_text_quality package.
package textquality

import (
	"github.com/baditaflorin/go_text_quality/internal/adapters/logger"
	"github.com/baditaflorin/go_text_quality/internal/ports"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewStdLogger()
}
