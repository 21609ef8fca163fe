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

package shared

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Session is the authenticated caller of a request
type Session struct {
	AccountID uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

func SetSession(ctx Context, session Session) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) Session {
	return ctx.Get("session").(Session)
}

func MaybeGetSession(ctx Context) (Session, bool) {
	session, ok := ctx.Get("session").(Session)
	return session, ok
}

func GetParam(ctx Context, param string) string {
	return SanitizeParam(ctx.Param(param))
}

// GetThreatID reads the numeric threat id from the path. Malformed ids
// cannot address any threat and are therefore reported as not found.
func GetThreatID(ctx Context) (int64, error) {
	id, err := strconv.ParseInt(GetParam(ctx, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrNotFound, "invalid threat id %q", ctx.Param("id"))
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"per_page"`
	Page     int `json:"current_page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

// Pages returns the number of pages needed to show total records
func (p PageInfo) Pages(total int64) int {
	if total <= 0 || p.PageSize <= 0 {
		return 0
	}
	return int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

// NewPageInfo validates the given page and page size
func NewPageInfo(page, pageSize int) (PageInfo, error) {
	if page < 1 {
		return PageInfo{}, errors.Wrap(ErrValidation, "page must be a positive integer")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return PageInfo{}, errors.Wrapf(ErrValidation, "per_page must be between 1 and %d", MaxPageSize)
	}
	// the offset must stay addressable by postgres
	if page-1 > math.MaxInt32/pageSize {
		return PageInfo{}, errors.Wrap(ErrValidation, "page is out of range")
	}
	return PageInfo{Page: page, PageSize: pageSize}, nil
}

// GetPageInfo reads the page and per_page query parameters.
// Absent values fall back to page 1 and the default page size.
func GetPageInfo(ctx Context) (PageInfo, error) {
	page, err := intQueryParam(ctx, "page", 1)
	if err != nil {
		return PageInfo{}, err
	}
	pageSize, err := intQueryParam(ctx, "per_page", DefaultPageSize)
	if err != nil {
		return PageInfo{}, err
	}
	return NewPageInfo(page, pageSize)
}

// GetOptionalIntQueryParam returns nil if the parameter is absent
func GetOptionalIntQueryParam(ctx Context, name string) (*int, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrap(ErrValidation, fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}

func intQueryParam(ctx Context, name string, def int) (int, error) {
	v, err := GetOptionalIntQueryParam(ctx, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
