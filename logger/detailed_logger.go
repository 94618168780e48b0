package logger

import (
	"context"
	"fmt"
	"runtime"

	"cloud.google.com/go/logging"
)

// DetailedLogger is a Logger that prefixes every entry with the file and line
// of the call site, so a log line can be traced back to the lookup that
// produced it. DetailedLoggerFromContext satisfies Provider, so services can
// take it anywhere a plain Provider is expected.
type DetailedLogger struct {
	Logger
}

// DetailedLoggerFromContext returns the detailed logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func DetailedLoggerFromContext(ctx context.Context) ILogger {
	if d, ok := ctx.Value(CtxDetailedLoggerKey).(*DetailedLogger); ok {
		return d
	}

	return newDetailedLogger()
}

func newDetailedLogger() *DetailedLogger {
	return &DetailedLogger{
		Logger: *newDefaultLogger(),
	}
}

func callSite(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("%s:%d ", file, line)
	}

	return ""
}

// log is three frames below the caller whose site gets recorded:
// callSite, log, and the ILogger method itself.
func (l *DetailedLogger) log(s logging.Severity, msg string) {
	logReqEntry(s, &l.Logger, callSite(3)+msg)
}

func (l *DetailedLogger) Debug(v ...interface{}) {
	l.log(logging.Debug, fmt.Sprint(v...))
}

func (l *DetailedLogger) Info(v ...interface{}) {
	l.log(logging.Info, fmt.Sprint(v...))
}

func (l *DetailedLogger) Print(v ...interface{}) {
	l.log(logging.Info, fmt.Sprint(v...))
}

func (l *DetailedLogger) Warning(v ...interface{}) {
	l.log(logging.Warning, fmt.Sprint(v...))
}

func (l *DetailedLogger) Error(v ...interface{}) {
	l.log(logging.Error, fmt.Sprint(v...))
}

func (l *DetailedLogger) Fatal(v ...interface{}) {
	l.log(logging.Critical, fmt.Sprint(v...))
	panic(fmt.Sprint(v...))
}

func (l *DetailedLogger) Debugf(format string, v ...interface{}) {
	l.log(logging.Debug, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Infof(format string, v ...interface{}) {
	l.log(logging.Info, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Printf(format string, v ...interface{}) {
	l.log(logging.Info, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Warningf(format string, v ...interface{}) {
	l.log(logging.Warning, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Errorf(format string, v ...interface{}) {
	l.log(logging.Error, fmt.Sprintf(format, v...))
}

func (l *DetailedLogger) Fatalf(format string, v ...interface{}) {
	l.log(logging.Critical, fmt.Sprintf(format, v...))
	panic(fmt.Sprintf(format, v...))
}
