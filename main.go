package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/tasklight/todoapi/internal/config"
	"github.com/tasklight/todoapi/internal/middleware"
	"github.com/tasklight/todoapi/internal/openapi"
	"github.com/tasklight/todoapi/internal/router"
	"github.com/tasklight/todoapi/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	todoStore := store.NewTodoStore()
	apiRouter := router.Setup(todoStore)

	generator := openapi.NewGenerator(cfg.OpenAPI)
	spec, err := generator.Generate(apiRouter)
	if err != nil {
		logger.Error("failed to generate OpenAPI spec", slog.Any("error", err))
		os.Exit(1)
	}

	jsonSpec, err := generator.GenerateJSON(spec)
	if err != nil {
		logger.Error("failed to render OpenAPI JSON", slog.Any("error", err))
		os.Exit(1)
	}

	yamlSpec, err := generator.GenerateYAML(spec)
	if err != nil {
		logger.Error("failed to render OpenAPI YAML", slog.Any("error", err))
		os.Exit(1)
	}

	handler := middleware.Chain(
		newServeHandler(apiRouter, jsonSpec, yamlSpec),
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Recovery(logger),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	logger.Info("starting server",
		slog.String("addr", cfg.Server.Addr()),
		slog.Int("routes", len(apiRouter.Handlers())),
	)

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// newServeHandler mounts the documentation endpoints beside the API routes.
func newServeHandler(apiRouter http.Handler, jsonSpec, yamlSpec []byte) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonSpec)
	})

	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(yamlSpec)
	})

	mux.HandleFunc("GET /docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		_, _ = w.Write([]byte(docsPage))
	})

	mux.Handle("/", apiRouter)

	return mux
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
    <title>Todo API Documentation</title>
    <meta charset="UTF-8">
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.52.5/swagger-ui.css" />
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@3.52.5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: '/openapi.json',
                dom_id: '#swagger-ui',
                deepLinking: true
            });
        };
    </script>
</body>
</html>`
