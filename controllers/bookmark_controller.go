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

	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

type BookmarkController struct {
	bookmarkService shared.BookmarkService
}

func NewBookmarkController(bookmarkService shared.BookmarkService) *BookmarkController {
	return &BookmarkController{
		bookmarkService: bookmarkService,
	}
}

// @Summary List the bookmarked threats of the current account
// @Tags Bookmarks
// @Security BearerAuth
// @Success 200 {object} dtos.BookmarkListResponse
// @Router /threats/bookmarks [get]
func (c *BookmarkController) List(ctx shared.Context) error {
	bookmarks, err := c.bookmarkService.List(shared.GetSession(ctx).AccountID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.BookmarkListResponse{
		Bookmarks: bookmarks,
		Total:     len(bookmarks),
	})
}

// @Summary Bookmark a threat
// @Tags Bookmarks
// @Security BearerAuth
// @Param id path int true "Threat ID"
// @Param body body dtos.BookmarkCreateRequest false "Request body"
// @Success 201 {object} dtos.BookmarkResponse
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Router /threats/{id}/bookmark [post]
func (c *BookmarkController) Create(ctx shared.Context) error {
	threatID, err := shared.GetThreatID(ctx)
	if err != nil {
		return err
	}
	var req dtos.BookmarkCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	bookmark, err := c.bookmarkService.Create(shared.GetSession(ctx).AccountID, threatID, req.Notes)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dtos.BookmarkResponse{
		Message:  "threat bookmarked",
		Bookmark: dtos.BookmarkToDTO(bookmark),
	})
}

func (c *BookmarkController) Update(ctx shared.Context) error {
	threatID, err := shared.GetThreatID(ctx)
	if err != nil {
		return err
	}
	var req dtos.BookmarkUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	bookmark, err := c.bookmarkService.Update(shared.GetSession(ctx).AccountID, threatID, req.Notes)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.BookmarkResponse{
		Message:  "bookmark updated",
		Bookmark: dtos.BookmarkToDTO(bookmark),
	})
}

func (c *BookmarkController) Delete(ctx shared.Context) error {
	threatID, err := shared.GetThreatID(ctx)
	if err != nil {
		return err
	}
	if err := c.bookmarkService.Delete(shared.GetSession(ctx).AccountID, threatID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "bookmark removed"})
}
