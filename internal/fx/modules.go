package fx

import (
	"database/sql"

	"royale-tracker/internal/api"
	"royale-tracker/internal/config"
	"royale-tracker/internal/database"
	"royale-tracker/internal/db"
	"royale-tracker/internal/logger"
	"royale-tracker/internal/metrics"
	"royale-tracker/internal/repository"
	"royale-tracker/internal/server"
	"royale-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(metrics.New),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewClanRepository),
	fx.Provide(repository.NewSnapshotRepository),
	// api client
	fx.Provide(
		fx.Annotate(
			api.NewRoyaleClient,
			fx.As(new(service.RoyaleAPI)),
		),
	),
	// svc
	fx.Provide(service.NewClanService),
	fx.Provide(service.NewPlayerService),
	// server
	fx.Provide(server.NewTrackerServer),
)
