package fiberlog

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagUserID   = "user_id"
	RequestID   = "request_id"
	maxBodySize = 2048
)

// FuncTag extracts one log field from the request.
type FuncTag func(c *fiber.Ctx, d *data) any

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// UserIDGetter resolves the authenticated user for TagUserID. It is set by the
// auth middleware package to avoid an import cycle.
var UserIDGetter func(c *fiber.Ctx) int

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) any {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) any {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) any {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) any {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) any {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, _ *data) any {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) any {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) any {
			if !isJSON(c.Get(fiber.HeaderContentType)) {
				return ""
			}
			return truncate(redact(c.Body(), cfg.RedactFields))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) any {
			if !isJSON(string(c.Response().Header.ContentType())) {
				return ""
			}
			return truncate(redact(c.Response().Body(), cfg.RedactFields))
		},
		TagUserID: func(c *fiber.Ctx, _ *data) any {
			if UserIDGetter == nil {
				return ""
			}
			if id := UserIDGetter(c); id != 0 {
				return id
			}
			return ""
		},
		RequestID: func(c *fiber.Ctx, _ *data) any {
			if id, ok := c.Locals("requestid").(string); ok {
				return id
			}
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// redact masks the given keys of a JSON object, anything else is returned as is.
func redact(body []byte, fields []string) []byte {
	if len(fields) == 0 {
		return body
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return body
	}
	changed := false
	for _, field := range fields {
		if _, ok := payload[field]; ok {
			payload[field] = json.RawMessage(`"***"`)
			changed = true
		}
	}
	if !changed {
		return body
	}
	masked, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return masked
}

func isJSON(contentType string) bool {
	return len(contentType) >= len(fiber.MIMEApplicationJSON) &&
		contentType[:len(fiber.MIMEApplicationJSON)] == fiber.MIMEApplicationJSON
}

func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}
