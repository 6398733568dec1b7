package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// NewLogger builds the process logger: JSON lines to logs/<name>.log through
// an async buffered writer, mirrored to stdout by a console hook.
func NewLogger(name string) (*logrus.Logger, *AsyncFileWriter) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))

	logFile, err := logFilePath(name)
	if err != nil {
		logger.WithError(err).Warn("file logging disabled, writing to console only")
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		logger.WithError(err).Warn("failed to create logs directory, writing to console only")
		return logger, nil
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		logger.WithError(err).Warn("failed to initialize async log writer, writing to console only")
		return logger, nil
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook())

	return logger, asyncWriter
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func logFilePath(name string) (string, error) {
	if name == "" {
		name = "tutor"
	}
	logFile := filepath.Clean(filepath.Join(logDir, name+".log"))
	if !strings.HasPrefix(logFile, logDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid log file path %q: must be in %s directory", logFile, logDir)
	}
	return logFile, nil
}
