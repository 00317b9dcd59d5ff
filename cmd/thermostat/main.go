package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_thermostat/internal/assistant"
	"smart_thermostat/internal/config"
	"smart_thermostat/internal/handlers"
	"smart_thermostat/internal/llm"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/repository/db"
	"smart_thermostat/internal/server"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/weather"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

// @title        Smart Thermostat API
// @version      1.0
// @description  Thermostat controls, outdoor weather and an assistant whose proposals apply only after confirmation.
// @host         localhost:8080
// @BasePath     /
func main() {
	// load configs/config.yml + THERMOSTAT_* env
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
	if cfg.LLM.APIKey == "" {
		log.Warnw("llm api key not set; assistant turns will reply with an error", "env", "OPENROUTER_API_KEY")
	}

	// open DB
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	session, err := service.NewSession()
	if err != nil {
		log.Fatalw("failed to build proposal machine", "err", err)
	}
	repos := repository.NewRepository(conn)
	turns := assistant.NewOrchestrator(
		llm.NewOpenRouterClient(llm.Config{
			BaseURL:  cfg.LLM.BaseURL,
			APIKey:   cfg.LLM.APIKey,
			Timeout:  cfg.LLM.Timeout,
			SiteURL:  cfg.LLM.SiteURL,
			SiteName: cfg.LLM.SiteName,
		}),
		cfg.LLM.Model,
		repos.HistoryRepo,
		log,
	)
	wx := weather.NewOpenMeteo(weather.Config{
		GeocodingURL: cfg.Weather.GeocodingURL,
		ForecastURL:  cfg.Weather.ForecastURL,
		Timeout:      cfg.Weather.Timeout,
	})
	services := service.NewService(repos, session, service.Deps{Turns: turns, Weather: wx, Log: log})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Simulator.Enabled {
		go services.Simulator.Run(ctx, cfg.Simulator.Tick)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(c config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	path := c.Path
	if path == "" {
		path = ":memory:"
	}
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg config.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Infow("http server listening", "port", port)
		err := srv.Run(port, handler.InitRoutes(), server.Timeouts{
			ReadHeader: cfg.Server.ReadHeaderTimeout,
			Write:      cfg.Server.WriteTimeout,
			Idle:       cfg.Server.IdleTimeout,
		})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
