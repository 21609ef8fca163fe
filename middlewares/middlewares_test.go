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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/mocks"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("Basic dXNlcjpwYXNz"))
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the session for a valid token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid")
		c := e.NewContext(req, httptest.NewRecorder())

		session := shared.Session{AccountID: uuid.New(), TokenID: "jti"}
		authService := mocks.NewAuthService(t)
		authService.On("Authenticate", "valid").Return(session, nil)

		var called bool
		err := SessionMiddleware(authService)(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, session, shared.GetSession(ctx))
			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	for _, authErr := range []*shared.AuthError{shared.ErrTokenMissing, shared.ErrTokenExpired, shared.ErrTokenInvalid, shared.ErrTokenRevoked} {
		t.Run(fmt.Sprintf("should answer %s with %d", authErr.Code, authErr.Status), func(t *testing.T) {
			e := Server(nil)
			authService := mocks.NewAuthService(t)
			authService.On("Authenticate", "").Return(shared.Session{}, authErr)

			e.GET("/protected/", func(ctx echo.Context) error {
				t.Fatal("handler must not be called")
				return nil
			}, SessionMiddleware(authService))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected/", nil))

			assert.Equal(t, authErr.Status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, authErr.Code, body["error"])
			assert.Equal(t, authErr.Message, body["message"])
		})
	}
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("threat 1: %w", shared.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("bookmark: %w", shared.ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("per_page: %w", shared.ErrValidation), http.StatusBadRequest},
		{"invalid credentials", shared.ErrInvalidCredentials, http.StatusUnauthorized},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Server(nil)
			e.GET("/fail/", func(ctx echo.Context) error {
				return tc.err
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tc.status, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}

	t.Run("should expose the message of unexpected errors", func(t *testing.T) {
		e := Server(nil)
		e.GET("/fail/", func(ctx echo.Context) error {
			return errors.New("connection refused")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail/", nil))
		assert.JSONEq(t, `{"message":"connection refused"}`, rec.Body.String())
	})
}

func TestRecoverMiddleware(t *testing.T) {
	e := Server(nil)
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}

func TestAuthRateLimiter(t *testing.T) {
	e := Server(nil)
	e.POST("/login/", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	}, AuthRateLimiter(1))

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login/", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
