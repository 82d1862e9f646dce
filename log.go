package coinzdense

import goLog "log"

// Logger is the logging facility this package calls through for
// non-hot-path diagnostics (shape resolution, registry lookups). The
// core never logs on the path between a caller and a derived subkey:
// errors are returned, not logged.
type Logger interface {
	Logf(format string, a ...interface{})
}

type dummyLogger struct{}
type stdlibLogger struct{}

func (logger *dummyLogger) Logf(format string, a ...interface{}) {}

func (logger *stdlibLogger) Logf(format string, a ...interface{}) {
	goLog.Printf(format, a...)
}

var log Logger = &dummyLogger{}

// EnableLogging logs through the standard library log package. For more
// flexibility, see SetLogger.
func EnableLogging() {
	SetLogger(&stdlibLogger{})
}

// SetLogger installs logger as the destination for this package's
// diagnostics. Pass nil to disable logging.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}
