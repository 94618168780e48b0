package logger

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

const (
	// CtxLoggerKey is how context logger values are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// CtxDetailedLoggerKey is how context logger values are stored/retrieved.
	CtxDetailedLoggerKey = "app-detailed-logger"

	// logID is the name of the log file for cloud logging.
	logID = "gcp_environments"

	gcpLogging = "GCP_LOGGING"
)

var (
	cloudLogger  *logging.Logger
	projectID    = "localhost"
	cloudLogging bool
)

type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the google cloud logging client. It is the embedding
// application's entrypoint: the library itself never calls it, and callers
// that do not need cloud logging can skip it and use FromContext directly.
// The GCP_LOGGING variable turns cloud logging off without code changes.
func NewLogging(ctx context.Context, project string, opts ...option.ClientOption) (*Logging, error) {
	client, err := logging.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, err
	}

	cloudLogger = client.Logger(logID)
	projectID = project

	cloudLogging, err = strconv.ParseBool(getEnv(gcpLogging, "true"))
	if err != nil {
		return nil, err
	}

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger returns a context holding a fresh logger, and the logger itself.
func NewLogger(ctx context.Context) (context.Context, *Logger) {
	l := newDefaultLogger()
	d := newDetailedLogger()

	ctx = context.WithValue(ctx, CtxLoggerKey, l)
	ctx = context.WithValue(ctx, CtxDetailedLoggerKey, d)

	return ctx, l
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", projectID, started.UnixNano(), id)
}
