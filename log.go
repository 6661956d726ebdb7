package chartarea

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the logger used by the renderers. A nil l silences
// logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the logger named name, derived from the one set with
// SetLogger.
func Logger(name string) *zap.Logger {
	return logger.Named(name)
}
