package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields evaluates the configured tags, empty strings are left out.
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	fields := make(log.Fields, len(ftm))
	for key, tag := range ftm {
		value := tag(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}

// New creates the access log middleware. Requests are logged after the
// handler chain completes: 5xx as errors, 3xx and 4xx as warnings.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}
	ftm := getFuncTagMap(cfg)

	return func(c *fiber.Ctx) error {
		if _, ok := skip[c.Path()]; ok {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := logger.WithFields(getLogrusFields(ftm, c, d))
		message := "api request " + c.Method() + " " + c.Route().Path
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}
