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

package router

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/threatintel/cmd/threatintel/api"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func serviceDescriptor(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Threat Intelligence Aggregator API",
		"version": config.Version,
		"endpoints": echo.Map{
			"auth":    "/api/v1/auth/",
			"threats": "/api/v1/threats/",
			"feeds":   "/api/v1/feeds/",
		},
	})
}

// health answers liveness checks. Database state is reported by /api/v1/info/
func health(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	srv.Echo.GET("/", serviceDescriptor)
	srv.Echo.GET("/health/", health)
	srv.Echo.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router := srv.Echo.Group("/api/v1")
	apiV1Router.GET("/info/", func(ctx shared.Context) error {
		resp := buildInfo()
		resp.Database = databaseInfo(db, pool)
		return ctx.JSON(http.StatusOK, resp)
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}
