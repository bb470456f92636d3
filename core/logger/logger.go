package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default logger so packages can log before Init is called
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init configures the global logger. Level is one of debug, info, warn, error.
func Init(level string, development bool) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	sugar = l.Sugar()
}

func Sync() {
	_ = sugar.Sync()
}

// normalize tolerates the common call shape logger.Error("Where", err)
// by keying a single dangling value as "error".
func normalize(args []any) []any {
	if len(args) == 1 {
		return []any{"error", args[0]}
	}
	return args
}

func Debug(msg string, args ...any) {
	sugar.Debugw(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	sugar.Infow(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	sugar.Warnw(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	sugar.Errorw(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	sugar.Fatalw(msg, normalize(args)...)
}
