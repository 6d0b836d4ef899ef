package api

import (
	"fmt"
	"strings"

	"premier-properties/pkg/logger"
)

// leveledLogger routes retryablehttp's request tracing into the app logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Errorf("%s%s", msg, kv(keysAndValues))
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Debugf("%s%s", msg, kv(keysAndValues))
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Debugf("%s%s", msg, kv(keysAndValues))
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.GlobalLogger.Warnf("%s%s", msg, kv(keysAndValues))
}

func kv(keysAndValues []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, ", %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
