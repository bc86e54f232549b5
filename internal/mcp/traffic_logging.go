package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "coursepulse_mcp_request_duration_seconds",
	Help:    "MCP request handling duration in seconds",
	Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
}, []string{"direction", "method", "tool", "result"})

// reportArgs are the tool arguments worth echoing in logs.
var reportArgs = []string{"user_id", "limit", "range", "now"}

// toolCall is the part of tools/call params the middleware inspects.
type toolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// trafficLoggingMiddleware times every request, and at debug level logs each
// report call with its tool name and arguments.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if strings.HasPrefix(method, "notifications/") {
				return next(ctx, method, req)
			}

			var call toolCall
			if method == "tools/call" {
				call = decodeToolCall(req)
			}
			debug := logger != nil && logger.Enabled(ctx, slog.LevelDebug)
			if debug {
				logger.Debug("mcp request", callAttrs(direction, method, req, call)...)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			elapsed := time.Since(start)

			outcome := outcomeOf(result, err)
			requestDuration.WithLabelValues(direction, method, call.Name, outcome).Observe(elapsed.Seconds())

			if debug {
				attrs := append(callAttrs(direction, method, req, call), "result", outcome, "duration", elapsed)
				if err != nil {
					attrs = append(attrs, "error", err)
				}
				logger.Debug("mcp response", attrs...)
			}
			return result, err
		}
	}
}

func callAttrs(direction, method string, req sdkmcp.Request, call toolCall) []any {
	attrs := []any{"direction", direction, "method", method}
	if id := sessionID(req); id != "" {
		attrs = append(attrs, "session_id", id)
	}
	if call.Name == "" {
		return attrs
	}
	attrs = append(attrs, "tool", call.Name)
	for _, key := range reportArgs {
		if v, ok := call.Arguments[key]; ok {
			attrs = append(attrs, key, v)
		}
	}
	return attrs
}

// outcomeOf distinguishes protocol failures from tool-level errors such as
// INVALID_RANGE, which the SDK reports as a successful call.
func outcomeOf(result sdkmcp.Result, err error) string {
	if err != nil {
		return "error"
	}
	if res, ok := result.(*sdkmcp.CallToolResult); ok && res != nil && res.IsError {
		return "tool_error"
	}
	return "ok"
}

func decodeToolCall(req sdkmcp.Request) toolCall {
	var call toolCall
	params := requestParams(req)
	if params == nil {
		return call
	}
	data, err := json.Marshal(params)
	if err != nil {
		return call
	}
	_ = json.Unmarshal(data, &call)
	return call
}

// The SDK's request accessors can panic on partially built requests, such as
// those carrying a nil session.
func sessionID(req sdkmcp.Request) (id string) {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	if session := req.GetSession(); session != nil {
		id = session.ID()
	}
	return id
}

func requestParams(req sdkmcp.Request) (params any) {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}
