package xcproof

// Logger is the structured-logging capability the core accepts, shaped to
// match zap's SugaredLogger (github.com/notary-mesh/xcproof/logging wires a
// zap-backed implementation) so callers already using that ecosystem need
// no adapter. This replaces fprintf(stderr, ...)-style diagnostics and ad
// hoc debug file writes with a single structured-logging seam.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Warnw(string, ...interface{})  {}

// NopLogger discards everything. It is the default when no logger is
// supplied via WithLogger.
var NopLogger Logger = nopLogger{}

// ScanOptions configures the scanning operations (ScanFrom,
// CalculateProofRoot). The zero value uses NopLogger.
type ScanOptions struct {
	Logger Logger
}

// ScanOption configures a ScanOptions value.
type ScanOption func(*ScanOptions)

// WithLogger attaches a structured logger to a scan operation.
func WithLogger(logger Logger) ScanOption {
	return func(o *ScanOptions) {
		o.Logger = logger
	}
}

func resolveScanOptions(opts []ScanOption) ScanOptions {
	o := ScanOptions{Logger: NopLogger}
	for _, apply := range opts {
		apply(&o)
	}
	if o.Logger == nil {
		o.Logger = NopLogger
	}
	return o
}
