package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the CLI diagnostics logger writing to w.
//
// --debug selects the development encoder at debug level with caller
// annotations. Otherwise a console production encoder logs warnings,
// info with --verbose, and errors only with --quiet.
func newLogger(w io.Writer, f commonFlags) *zap.SugaredLogger {
	var (
		encCfg zapcore.EncoderConfig
		level  zapcore.Level
		opts   []zap.Option
	)

	switch {
	case f.debug:
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
		opts = append(opts, zap.Development(), zap.AddCaller())
	default:
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		level = zapcore.WarnLevel
		if f.verbose {
			level = zapcore.InfoLevel
		}
		if f.quiet {
			level = zapcore.ErrorLevel
		}
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core, opts...).Sugar()
}
