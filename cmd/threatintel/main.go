// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threatintel/cmd/threatintel/api"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/controllers"
	"github.com/l3montree-dev/threatintel/database"
	"github.com/l3montree-dev/threatintel/database/repositories"
	"github.com/l3montree-dev/threatintel/feeds"
	"github.com/l3montree-dev/threatintel/router"
	"github.com/l3montree-dev/threatintel/services"
	"github.com/l3montree-dev/threatintel/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		panic(errors.New("Failed to load configuration"))
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	poolConfig := database.GetPoolConfigFromEnv()
	if err := poolConfig.Validate(); err != nil {
		slog.Error("invalid database configuration", "err", err)
		panic(errors.New("Failed to setup database connection"))
	}
	pool, err := database.NewPgxConnPool(poolConfig)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		fx.Invoke(func(lc fx.Lifecycle, pool *pgxpool.Pool) {
			lc.Append(fx.StopHook(pool.Close))
		}),
		api.ConfigModule,
		repositories.Module,
		services.ServiceModule,
		feeds.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(AuthRouter router.AuthRouter) {}),
		fx.Invoke(func(ThreatRouter router.ThreatRouter) {}),
		fx.Invoke(func(FeedRouter router.FeedRouter) {}),
	).Run()
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout
		Debug: cfg.Environment == "dev",

		AttachStacktrace: true,

		// no personally identifiable information is sent
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
