// Package logging provides the leveled logger used across datasplit.
//
// Console lines carry a timestamp and a (optionally colored) level tag;
// ERROR lines go to stderr, everything else to stdout. When a log file is
// configured every line is also appended there, uncolored, with size-based
// rotation.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	sugar   *zap.SugaredLogger
	success *zap.SugaredLogger // Same sinks, SUCCESS level tag.
	file    *lumberjack.Logger
	verbose bool
}

// NewLogger configures terminal colors from cfg and builds a logger writing
// to stdout/stderr and, when cfg.LogFile is set, to a rotating log file.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return newLogger(cfg, os.Stdout, os.Stderr)
}

// newLogger builds the zap cores over the given console writers.
func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	l := &Logger{verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, errors.Annotatef(err, "create log directory for %s", cfg.LogFile)
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
		}
	}

	minLevel := zapcore.InfoLevel
	if cfg.Verbose {
		minLevel = zapcore.DebugLevel
	}
	l.sugar = zap.New(l.tee(minLevel, stdout, stderr, levelEncoder)).Sugar()
	l.success = zap.New(l.tee(minLevel, stdout, stderr, successEncoder)).Sugar()
	return l, nil
}

// tee routes entries below ERROR to stdout, ERROR and above to stderr, and
// everything at or above minLevel to the log file, if any. level picks the
// level tag encoder for colored (console) or plain output.
func (l *Logger) tee(minLevel zapcore.Level, stdout, stderr io.Writer, level func(color bool) zapcore.LevelEncoder) zapcore.Core {
	below := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.ErrorLevel
	})
	errorsOnly := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	console := zapcore.NewConsoleEncoder(encoderConfig(level(term.Enabled())))
	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.Lock(zapcore.AddSync(stdout)), below),
		zapcore.NewCore(console, zapcore.Lock(zapcore.AddSync(stderr)), errorsOnly),
	}
	if l.file != nil {
		plain := zapcore.NewConsoleEncoder(encoderConfig(level(false)))
		cores = append(cores, zapcore.NewCore(plain, zapcore.AddSync(l.file), minLevel))
	}
	return zapcore.NewTee(cores...)
}

func levelEncoder(color bool) zapcore.LevelEncoder {
	if color {
		return zapcore.CapitalColorLevelEncoder
	}
	return zapcore.CapitalLevelEncoder
}

// successEncoder tags every entry SUCCESS, green on a color console.
func successEncoder(color bool) zapcore.LevelEncoder {
	tag := "SUCCESS"
	if color {
		tag = term.Green + tag + term.NC
	}
	return func(_ zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(tag)
	}
}

func encoderConfig(level zapcore.LevelEncoder) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	ec.EncodeLevel = level
	ec.CallerKey = zapcore.OmitKey
	ec.StacktraceKey = zapcore.OmitKey
	ec.NameKey = zapcore.OmitKey
	return ec
}

// Close flushes buffered output and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	_ = l.success.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Success logs at INFO severity under a SUCCESS tag.
func (l *Logger) Success(format string, args ...interface{}) {
	l.success.Infof(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Debug logs at DEBUG level when the logger was built with Verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.sugar.Debugf(format, args...)
}
