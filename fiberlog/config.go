package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths are request paths that are never logged
	SkipPaths []string
	// RedactFields are top-level JSON keys masked in logged bodies
	RedactFields []string
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
	RedactFields: []string{"password", "token", "refresh_token"},
}
