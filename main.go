package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/config"
	"github.com/tidbcloud/zero-mcp/pkg/credentials"
	"github.com/tidbcloud/zero-mcp/pkg/mcp"
	"github.com/tidbcloud/zero-mcp/pkg/mcp/tools"
	"github.com/tidbcloud/zero-mcp/pkg/middleware"
	"github.com/tidbcloud/zero-mcp/pkg/tidb"
)

// Version is set at build time via ldflags
var Version = "dev"

const serverName = "TiDB Cloud Zero"

func main() {
	transport := flag.String("transport", "stdio", "MCP transport: stdio or http")
	flag.Parse()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The stdio transport owns stdout for the protocol stream, so all
	// logging goes to stderr.
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	store, err := credentials.NewStore(cfg.StateFile)
	if err != nil {
		logger.Warn("instance record persistence disabled", zap.Error(err))
		store = nil
	}

	timeout := time.Duration(cfg.QueryTimeoutSeconds) * time.Second
	provisioner := credentials.NewProvisioner(cfg.ZeroAPIURL, timeout)
	resolver := credentials.NewResolver(cfg.TiDB, store, provisioner, logger)

	executor, err := tidb.NewExecutor(cfg, resolver, logger)
	if err != nil {
		logger.Fatal("failed to create executor", zap.Error(err))
	}
	if closer, ok := executor.(*tidb.Driver); ok {
		defer closer.Close()
	}

	srv := mcp.NewServer(serverName, cfg.Version, logger)
	tools.RegisterAll(srv.MCP(), &tools.ToolDeps{
		Executor: executor,
		Resolver: resolver,
		Backend:  cfg.Backend,
		MaxRows:  cfg.MaxDisplayRows,
		Logger:   logger,
	})

	logger.Info("starting zero-mcp",
		zap.String("transport", *transport),
		zap.String("backend", cfg.Backend),
		zap.String("version", cfg.Version))

	switch *transport {
	case "http":
		mux := http.NewServeMux()
		httpServer := srv.NewStreamableHTTPServer()
		mux.Handle("/mcp", middleware.MCPRequestLogger(logger)(httpServer))

		addr := cfg.BindAddr + ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	default:
		if err := srv.ServeStdio(); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}
}
