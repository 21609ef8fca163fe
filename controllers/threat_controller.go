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
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/l3montree-dev/threatintel/utils"
	"github.com/pkg/errors"
)

type ThreatController struct {
	threatService shared.ThreatService
	now           func() time.Time
}

func NewThreatController(threatService shared.ThreatService) *ThreatController {
	return &ThreatController{
		threatService: threatService,
		now:           time.Now,
	}
}

// maxDays bounds the look back window of the list endpoint to a century
const maxDays = 36500

func singleValue[T ~string](raw string) []T {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return []T{T(raw)}
}

func toValues[T ~string](raw []string) []T {
	values := make([]T, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, T(v))
		}
	}
	return values
}

func (c *ThreatController) listFilter(ctx shared.Context) (shared.ThreatFilter, error) {
	filter := shared.ThreatFilter{
		Sources:    singleValue[models.ThreatSource](ctx.QueryParam("source")),
		Categories: singleValue[models.ThreatCategory](ctx.QueryParam("type")),
		Severities: singleValue[models.Severity](ctx.QueryParam("severity")),
		Search:     strings.TrimSpace(ctx.QueryParam("search")),
	}

	days, err := shared.GetOptionalIntQueryParam(ctx, "days")
	if err != nil {
		return shared.ThreatFilter{}, err
	}
	if days != nil {
		if *days < 1 || *days > maxDays {
			return shared.ThreatFilter{}, errors.Wrapf(shared.ErrValidation, "days must be between 1 and %d", maxDays)
		}
		since := c.now().UTC().AddDate(0, 0, -*days)
		filter.DiscoveredFrom = &since
	}
	return filter, nil
}

// @Summary List threats
// @Tags Threats
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Page size, at most 100"
// @Param source query string false "Source"
// @Param type query string false "Threat type"
// @Param severity query string false "Severity"
// @Param search query string false "Search in title, description and threat id"
// @Param days query int false "Only threats discovered within the last days"
// @Success 200 {object} dtos.ThreatListResponse
// @Router /threats [get]
func (c *ThreatController) List(ctx shared.Context) error {
	pageInfo, err := shared.GetPageInfo(ctx)
	if err != nil {
		return err
	}
	filter, err := c.listFilter(ctx)
	if err != nil {
		return err
	}

	res, err := c.threatService.List(filter, pageInfo)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// @Summary Get a single threat
// @Tags Threats
// @Security BearerAuth
// @Param id path int true "Threat ID"
// @Success 200 {object} dtos.ThreatDetailDTO
// @Failure 404 {object} object{message=string}
// @Router /threats/{id} [get]
func (c *ThreatController) Read(ctx shared.Context) error {
	threatID, err := shared.GetThreatID(ctx)
	if err != nil {
		return err
	}

	threat, err := c.threatService.Read(shared.GetSession(ctx).AccountID, threatID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, threat)
}

// @Summary Threat statistics
// @Tags Threats
// @Security BearerAuth
// @Success 200 {object} dtos.ThreatStats
// @Router /threats/stats [get]
func (c *ThreatController) Stats(ctx shared.Context) error {
	stats, err := c.threatService.Stats()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

// minConfidence treats 0 like an absent filter. Sources without a confidence
// score would otherwise be dropped.
func minConfidence(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func searchRequestToQuery(req dtos.ThreatSearchRequest) (shared.ThreatFilter, shared.ThreatSort, shared.PageInfo, error) {
	sort, err := shared.ParseThreatSort(req.SortBy, req.SortOrder)
	if err != nil {
		return shared.ThreatFilter{}, shared.ThreatSort{}, shared.PageInfo{}, err
	}

	pageInfo, err := shared.NewPageInfo(utils.OrDefault(req.Page, 1), utils.OrDefault(req.PerPage, shared.DefaultPageSize))
	if err != nil {
		return shared.ThreatFilter{}, shared.ThreatSort{}, shared.PageInfo{}, err
	}

	from, err := shared.ParseDateBoundary(req.StartDate, false)
	if err != nil {
		return shared.ThreatFilter{}, shared.ThreatSort{}, shared.PageInfo{}, err
	}
	to, err := shared.ParseDateBoundary(req.EndDate, true)
	if err != nil {
		return shared.ThreatFilter{}, shared.ThreatSort{}, shared.PageInfo{}, err
	}

	filter := shared.ThreatFilter{
		Sources:        toValues[models.ThreatSource](req.Sources),
		Categories:     toValues[models.ThreatCategory](req.Types),
		Severities:     toValues[models.Severity](req.Severities),
		Search:         strings.TrimSpace(req.Search),
		DiscoveredFrom: from,
		DiscoveredTo:   to,
		MinConfidence:  minConfidence(req.MinConfidence),
	}
	return filter, sort, pageInfo, nil
}

// @Summary Advanced threat search
// @Tags Threats
// @Security BearerAuth
// @Param body body dtos.ThreatSearchRequest true "Request body"
// @Success 200 {object} dtos.ThreatListResponse
// @Failure 400 {object} object{message=string}
// @Router /threats/search [post]
func (c *ThreatController) Search(ctx shared.Context) error {
	var req dtos.ThreatSearchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	filter, sort, pageInfo, err := searchRequestToQuery(req)
	if err != nil {
		return err
	}

	res, err := c.threatService.Search(filter, sort, pageInfo)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}
