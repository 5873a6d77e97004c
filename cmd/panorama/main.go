package main

import (
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/internal/config"
	"github.com/smallbiznis/panorama/internal/migration"
	"github.com/smallbiznis/panorama/internal/observability"
	"github.com/smallbiznis/panorama/internal/seed"
	"github.com/smallbiznis/panorama/internal/server"
	"github.com/smallbiznis/panorama/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		migration.Module,
		seed.Module,

		// HTTP API and the resource services it serves
		server.Module,
	)
	app.Run()
}
