package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives one usage event per successful API call.
type EventSink interface {
	Enabled() bool
	Enqueue(userID, event string, properties map[string]any)
}

// UsageAnalytics records successful authenticated calls. The event name is the route
// template, e.g. "api_v1_journal-drafts_:id_submit", so ids never become separate events.
func UsageAnalytics(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.Enabled() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if method, exists := c.Get(authMethodKey); exists {
			props["auth_method"] = method
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		sink.Enqueue(userID, event, props)
	}
}
