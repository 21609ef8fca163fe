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
	"github.com/l3montree-dev/threatintel/controllers"
	"github.com/l3montree-dev/threatintel/middlewares"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

type ThreatRouter struct {
	*echo.Group
}

func NewThreatRouter(
	apiV1Router APIV1Router,
	authService shared.AuthService,
	threatController *controllers.ThreatController,
	bookmarkController *controllers.BookmarkController,
) ThreatRouter {
	threatRouter := apiV1Router.Group.Group("/threats", middlewares.SessionMiddleware(authService))

	threatRouter.GET("/", threatController.List)
	threatRouter.GET("/stats/", threatController.Stats)
	threatRouter.POST("/search/", threatController.Search)
	threatRouter.GET("/bookmarks/", bookmarkController.List)
	threatRouter.GET("/:id/", threatController.Read)

	threatRouter.POST("/:id/bookmark/", bookmarkController.Create)
	threatRouter.PUT("/:id/bookmark/", bookmarkController.Update)
	threatRouter.DELETE("/:id/bookmark/", bookmarkController.Delete)

	return ThreatRouter{
		Group: threatRouter,
	}
}
