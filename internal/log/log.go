package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	cblog "github.com/charmbracelet/log"
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide logger, creating it on first use.
// HM_LOG_LEVEL sets the initial level (debug, info, warn, error).
func GetLogger() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = newLogger(os.Stderr)
		if lvl := strings.TrimSpace(os.Getenv("HM_LOG_LEVEL")); lvl != "" {
			_ = SetLevel(lvl)
		}
	})
	return logger
}

func newLogger(w io.Writer) *cblog.Logger {
	return cblog.NewWithOptions(w, cblog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "hm",
		Level:           cblog.WarnLevel,
	})
}

// SetLevel parses and applies a level name.
func SetLevel(level string) error {
	lvl, err := cblog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	GetLogger().SetLevel(lvl)
	return nil
}

// SetOutput redirects the logger. Tests use it to silence output.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { GetLogger().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { GetLogger().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { GetLogger().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { GetLogger().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { GetLogger().Fatalf(format, args...) }
