package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProgressService defines progress reports needed by MCP.
type ProgressService interface {
	LearnerProgress(ctx context.Context, userID string) (progress.Report, error)
	Popularity(ctx context.Context, limit int) ([]progress.CoursePopularity, error)
}

// EngagementService defines engagement reports needed by MCP.
type EngagementService interface {
	Series(ctx context.Context, token string, now time.Time) (engagement.Series, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Progress   ProgressService
	Engagement EngagementService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
	// Now defaults to time.Now. Engagement windows end at the end of its day.
	Now func() time.Time
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "coursepulse",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, newToolset(cfg))

	return server
}
