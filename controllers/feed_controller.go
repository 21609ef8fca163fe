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
	"fmt"
	"net/http"

	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
)

type FeedController struct {
	feedService shared.FeedService
}

func NewFeedController(feedService shared.FeedService) *FeedController {
	return &FeedController{
		feedService: feedService,
	}
}

// @Summary List the available feeds
// @Tags Feeds
// @Security BearerAuth
// @Success 200 {object} object{sources=[]dtos.FeedSource}
// @Router /feeds/sources [get]
func (c *FeedController) Sources(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"sources": c.feedService.Sources()})
}

// @Summary Ingest a single feed
// @Tags Feeds
// @Security BearerAuth
// @Param source path string true "Feed id"
// @Success 200 {object} object{message=string,added=int,total=int}
// @Failure 404 {object} object{message=string}
// @Failure 502 {object} object{success=bool,source=string,error=string}
// @Router /feeds/fetch/{source} [post]
func (c *FeedController) Fetch(ctx shared.Context) error {
	source := shared.GetParam(ctx, "source")

	res, err := c.feedService.FetchOne(ctx.Request().Context(), source)
	if err != nil {
		return err
	}
	if !res.Success {
		return ctx.JSON(http.StatusBadGateway, echo.Map{
			"success": false,
			"source":  res.Source,
			"error":   res.Error,
		})
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("fetched %d new threats from %s", res.Added, res.Source),
		"added":   res.Added,
		"total":   res.Total,
	})
}

// @Summary Ingest every feed
// @Tags Feeds
// @Security BearerAuth
// @Success 200 {object} dtos.FeedRunSummary
// @Router /feeds/fetch/all [post]
func (c *FeedController) FetchAll(ctx shared.Context) error {
	summary := c.feedService.FetchAll(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, echo.Map{
		"message":     fmt.Sprintf("fetched %d new threats", summary.TotalAdded),
		"results":     summary.Results,
		"total_added": summary.TotalAdded,
	})
}
