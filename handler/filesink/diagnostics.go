package filesink

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDiagnostics returns the logger a sink uses when Config.Diagnostics
// is nil: human-readable console output to w at Warn level and above.
func NewDiagnostics(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.WarnLevel)
	return zap.New(core)
}
