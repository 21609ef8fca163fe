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

package controllers

import (
	"net/http"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	authService shared.AuthService
}

func NewAuthController(authService shared.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func toAuthResponse(account models.Account, token shared.IssuedToken) dtos.AuthResponse {
	return dtos.AuthResponse{
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt.UTC().Format(time.RFC3339),
		User:        dtos.AccountToDTO(account),
	}
}

// @Summary Register a new account
// @Tags Authentication
// @Param body body dtos.RegisterRequest true "Request body"
// @Success 201 {object} dtos.AuthResponse
// @Failure 409 {object} object{message=string}
// @Router /auth/register [post]
func (c *AuthController) Register(ctx shared.Context) error {
	var req dtos.RegisterRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	account, token, err := c.authService.Register(req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toAuthResponse(account, token))
}

// @Summary Log in with email and password
// @Tags Authentication
// @Param body body dtos.LoginRequest true "Request body"
// @Success 200 {object} dtos.AuthResponse
// @Failure 401 {object} object{message=string}
// @Router /auth/login [post]
func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	account, token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAuthResponse(account, token))
}

// @Summary Revoke the access token of the request
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx shared.Context) error {
	if err := c.authService.Logout(shared.GetSession(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "successfully logged out"})
}

// @Summary Get the current account
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} dtos.AccountDTO
// @Router /auth/me [get]
func (c *AuthController) Me(ctx shared.Context) error {
	account, err := c.authService.CurrentAccount(shared.GetSession(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.AccountToDTO(account))
}

// @Summary Delete the current account and all of its bookmarks
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /auth/me [delete]
func (c *AuthController) Delete(ctx shared.Context) error {
	if err := c.authService.DeleteAccount(shared.GetSession(ctx)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "account deleted"})
}
