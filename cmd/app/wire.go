//go:build wireinject
// +build wireinject

package main

import (
	"staffdir/config"
	"staffdir/internal/command"
	"staffdir/internal/cron"
	"staffdir/internal/database"
	"staffdir/internal/database/client"
	mongoRepo "staffdir/internal/database/mongodb/repository"
	"staffdir/internal/handler"
	"staffdir/internal/middleware"
	"staffdir/internal/router"
	"staffdir/internal/service"
	"staffdir/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			telemetry.ProviderSet,
			newHttpServer,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			command.ProviderSet,
			client.NewMongoClient,
			mongoRepo.NewCounterRepository,
			mongoRepo.NewEmployeeRepository,
			mongoRepo.NewOrganizationRepository,
		),
	)
}
