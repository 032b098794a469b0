package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapcoreForTest builds a zap core that writes through l.Writer().
func zapcoreForTest(l *Logger) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zapcore.NewCore(enc, zapcore.AddSync(l.Writer()), zapcore.DebugLevel)
}
