package initializers

import (
	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/fiberlog"
	"interview-tracker-backend/middleware"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger configures the global logrus logger and returns the access log
// config. Access logs always go out at debug level and above.
func InitLogger(level string) *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, falling back to info")
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)

	accessLogger := log.New()
	accessLogger.SetFormatter(jsonFormatter())
	accessLogger.SetLevel(log.DebugLevel)

	fiberlog.UserIDGetter = middleware.GetUserID
	return &fiberlog.Config{
		Logger: accessLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagUserID,
			fiberlog.RequestID,
			fiberlog.TagBody,
			fiberlog.TagResBody,
		},
		SkipPaths:    []string{"/api/v1/health"},
		RedactFields: fiberlog.ConfigDefault.RedactFields,
	}
}
