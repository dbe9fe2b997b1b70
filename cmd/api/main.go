package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"atmodash.openclimate.org/internal/app"
	"atmodash.openclimate.org/internal/appconf"
	"atmodash.openclimate.org/internal/dataset"
	"atmodash.openclimate.org/internal/logging"
	"atmodash.openclimate.org/internal/restapi"
	"atmodash.openclimate.org/internal/webui"
)

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.DataDir, "data-dir", "data", "Directory containing the gas CSV files")
	flag.StringVar(&cfg.CatalogPath, "catalog", "", "Optional YAML gas catalog file")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	catalog := appconf.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := appconf.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			logger.Error("failed to load gas catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		catalog = loaded
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Store:   dataset.NewStore(cfg.DataDir, logger),
	}

	router := httprouter.New()
	restapi.NewRestAPI(application).SetRoutes(router)
	webui.NewWebUI(application).SetRoutes(router)

	handler := restapi.NewRequestLoggingMiddleware(logger)(restapi.ApplyGzipMiddleware(router))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "data_dir", cfg.DataDir)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
