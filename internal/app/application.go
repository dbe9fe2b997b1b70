package app

import (
	"log/slog"

	"atmodash.openclimate.org/internal/appconf"
	"atmodash.openclimate.org/internal/dataset"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Catalog appconf.Catalog
	Store   *dataset.Store
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the directory the
// gas CSV files live in, and an optional gas catalog file. These are read
// from command-line flags when the Application starts.
type Config struct {
	Port        int
	Env         string
	DataDir     string
	CatalogPath string
}
