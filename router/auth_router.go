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
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/controllers"
	"github.com/l3montree-dev/threatintel/middlewares"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	*echo.Group
}

func NewAuthRouter(
	apiV1Router APIV1Router,
	authConfig config.AuthConfig,
	authService shared.AuthService,
	authController *controllers.AuthController,
) AuthRouter {
	authRouter := apiV1Router.Group.Group("/auth")

	rateLimited := authRouter.Group("", middlewares.AuthRateLimiter(authConfig.RateLimit))
	rateLimited.POST("/register/", authController.Register)
	rateLimited.POST("/login/", authController.Login)

	sessionRouter := authRouter.Group("", middlewares.SessionMiddleware(authService))
	sessionRouter.POST("/logout/", authController.Logout)
	sessionRouter.GET("/me/", authController.Me)
	sessionRouter.DELETE("/me/", authController.Delete)

	return AuthRouter{
		Group: authRouter,
	}
}
