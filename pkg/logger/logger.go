// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a production logger, or a development logger when the app
// runs outside production (human-readable output, debug level enabled).
func New(isProduction bool) (*zap.Logger, error) {
	if isProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
