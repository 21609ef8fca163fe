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

package middlewares

import (
	"strings"

	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// Any other header shape counts as no token at all.
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionMiddleware rejects every request without a valid access token.
// On success the session is available through shared.GetSession.
func SessionMiddleware(authService shared.AuthService) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			session, err := authService.Authenticate(bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization)))
			if err != nil {
				return err
			}
			shared.SetSession(ctx, session)
			return next(ctx)
		}
	}
}
