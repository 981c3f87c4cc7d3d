package logging

import (
	"go.uber.org/zap"

	"github.com/notary-mesh/xcproof"
)

// zapLogger adapts a *zap.SugaredLogger to xcproof.Logger. The method set
// already matches; this wrapper exists purely to keep xcproof's import
// graph free of zap.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps an existing *zap.SugaredLogger for use with xcproof's
// scanning operations.
func NewZapLogger(s *zap.SugaredLogger) xcproof.Logger {
	return zapLogger{s: s}
}

func (l zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l zapLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}

// NewProduction builds a production (JSON, info level and above) zap logger
// and wraps it for use with xcproof.
func NewProduction() (xcproof.Logger, func() error, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, nil, err
	}
	return NewZapLogger(z.Sugar()), z.Sync, nil
}

// NewDevelopment builds a development (console, debug level and above) zap
// logger and wraps it for use with xcproof.
func NewDevelopment() (xcproof.Logger, func() error, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, err
	}
	return NewZapLogger(z.Sugar()), z.Sync, nil
}
