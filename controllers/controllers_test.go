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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/mocks"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	shared.SetSession(ctx, shared.Session{AccountID: uuid.New(), TokenID: "jti"})
	return ctx, rec
}

func TestThreatControllerList(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("should translate the query parameters into a filter", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/threats/?page=2&per_page=10&source=CISA&type=vulnerability&severity=critical&search=%20rce%20&days=30", "")

		threatService := mocks.NewThreatService(t)
		threatService.On("List", mock.MatchedBy(func(f shared.ThreatFilter) bool {
			return assert.ObjectsAreEqual([]models.ThreatSource{models.ThreatSourceCISA}, f.Sources) &&
				assert.ObjectsAreEqual([]models.ThreatCategory{models.ThreatCategoryVulnerability}, f.Categories) &&
				assert.ObjectsAreEqual([]models.Severity{models.SeverityCritical}, f.Severities) &&
				f.Search == "rce" &&
				f.DiscoveredFrom != nil && f.DiscoveredFrom.Equal(now.Add(-30*24*time.Hour))
		}), shared.PageInfo{Page: 2, PageSize: 10}).Return(dtos.ThreatListResponse{Threats: []dtos.ThreatDTO{}, Total: 25, Pages: 3, CurrentPage: 2, PerPage: 10}, nil)

		c := NewThreatController(threatService)
		c.now = func() time.Time { return now }

		require.NoError(t, c.List(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var res dtos.ThreatListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 3, res.Pages)
	})

	t.Run("should use the defaults without parameters", func(t *testing.T) {
		ctx, _ := newContext(http.MethodGet, "/threats/", "")

		threatService := mocks.NewThreatService(t)
		threatService.On("List", shared.ThreatFilter{}, shared.PageInfo{Page: 1, PageSize: 20}).Return(dtos.ThreatListResponse{}, nil)

		require.NoError(t, NewThreatController(threatService).List(ctx))
	})

	t.Run("should accept the largest look back window", func(t *testing.T) {
		ctx, _ := newContext(http.MethodGet, "/threats/?days=36500", "")

		threatService := mocks.NewThreatService(t)
		threatService.On("List", mock.MatchedBy(func(f shared.ThreatFilter) bool {
			return f.DiscoveredFrom != nil && f.DiscoveredFrom.Equal(now.AddDate(0, 0, -36500)) && f.DiscoveredFrom.Before(now)
		}), shared.PageInfo{Page: 1, PageSize: 20}).Return(dtos.ThreatListResponse{}, nil)

		c := NewThreatController(threatService)
		c.now = func() time.Time { return now }

		require.NoError(t, c.List(ctx))
	})

	for _, query := range []string{"per_page=101", "per_page=0", "page=0", "page=abc", "page=9223372036854775807", "days=-1", "days=x", "days=36501", "days=200000"} {
		t.Run("should reject "+query, func(t *testing.T) {
			ctx, _ := newContext(http.MethodGet, "/threats/?"+query, "")

			err := NewThreatController(mocks.NewThreatService(t)).List(ctx)
			assert.ErrorIs(t, err, shared.ErrValidation)
		})
	}
}

func TestThreatControllerRead(t *testing.T) {
	t.Run("should report a malformed id as not found", func(t *testing.T) {
		ctx, _ := newContext(http.MethodGet, "/threats/abc/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("abc")

		err := NewThreatController(mocks.NewThreatService(t)).Read(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should pass the caller to the service", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/threats/7/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("7")

		threatService := mocks.NewThreatService(t)
		threatService.On("Read", shared.GetSession(ctx).AccountID, int64(7)).Return(dtos.ThreatDetailDTO{ThreatDTO: dtos.ThreatDTO{ID: 7}, IsBookmarked: true}, nil)

		require.NoError(t, NewThreatController(threatService).Read(ctx))
		assert.Contains(t, rec.Body.String(), `"is_bookmarked":true`)
	})
}

func TestThreatControllerSearch(t *testing.T) {
	t.Run("should translate the request body", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{
			"search": "acme",
			"sources": ["CISA", "URLhaus"],
			"severities": ["high", "critical"],
			"types": ["vulnerability"],
			"start_date": "2024-01-01",
			"end_date": "2024-01-31",
			"min_confidence": 75,
			"sort_by": "severity",
			"sort_order": "ASC",
			"page": 3,
			"per_page": 5
		}`)

		threatService := mocks.NewThreatService(t)
		threatService.On("Search", mock.MatchedBy(func(f shared.ThreatFilter) bool {
			return len(f.Sources) == 2 && len(f.Severities) == 2 && len(f.Categories) == 1 &&
				f.DiscoveredFrom.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.DiscoveredTo.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)) &&
				*f.MinConfidence == 75
		}), shared.ThreatSort{Key: shared.SortKeySeverity, Direction: shared.SortAsc}, shared.PageInfo{Page: 3, PageSize: 5}).Return(dtos.ThreatListResponse{}, nil)

		require.NoError(t, NewThreatController(threatService).Search(ctx))
	})

	t.Run("should fall back to the default sort", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{}`)

		threatService := mocks.NewThreatService(t)
		threatService.On("Search", mock.Anything, shared.DefaultThreatSort, shared.PageInfo{Page: 1, PageSize: 20}).Return(dtos.ThreatListResponse{}, nil)

		require.NoError(t, NewThreatController(threatService).Search(ctx))
	})

	t.Run("should not filter on a zero confidence", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{"min_confidence": 0}`)

		threatService := mocks.NewThreatService(t)
		threatService.On("Search", mock.MatchedBy(func(f shared.ThreatFilter) bool {
			return f.MinConfidence == nil
		}), shared.DefaultThreatSort, shared.PageInfo{Page: 1, PageSize: 20}).Return(dtos.ThreatListResponse{}, nil)

		require.NoError(t, NewThreatController(threatService).Search(ctx))
	})

	t.Run("should reject pages beyond the addressable offset", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{"page": 9223372036854775807, "per_page": 100}`)

		err := NewThreatController(mocks.NewThreatService(t)).Search(ctx)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("should reject unknown sort keys", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{"sort_by": "password_hash"}`)

		err := NewThreatController(mocks.NewThreatService(t)).Search(ctx)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{"start_date": "01/02/2024"}`)

		err := NewThreatController(mocks.NewThreatService(t)).Search(ctx)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("should reject unknown severities", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/search/", `{"severities": ["extreme"]}`)

		err := NewThreatController(mocks.NewThreatService(t)).Search(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestBookmarkController(t *testing.T) {
	t.Run("should create a bookmark without body", func(t *testing.T) {
		ctx, rec := newContext(http.MethodPost, "/threats/1/bookmark/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("1")

		bookmarkService := mocks.NewBookmarkService(t)
		bookmarkService.On("Create", shared.GetSession(ctx).AccountID, int64(1), "").Return(models.Bookmark{ID: 1, ThreatID: 1}, nil)

		require.NoError(t, NewBookmarkController(bookmarkService).Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should pass conflicts through", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/threats/1/bookmark/", `{"notes": "again"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("1")

		bookmarkService := mocks.NewBookmarkService(t)
		bookmarkService.On("Create", mock.Anything, int64(1), "again").Return(models.Bookmark{}, shared.ErrConflict)

		err := NewBookmarkController(bookmarkService).Create(ctx)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should pass nil notes on update without notes", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPut, "/threats/1/bookmark/", `{}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues("1")

		bookmarkService := mocks.NewBookmarkService(t)
		bookmarkService.On("Update", mock.Anything, int64(1), (*string)(nil)).Return(models.Bookmark{ID: 1}, nil)

		require.NoError(t, NewBookmarkController(bookmarkService).Update(ctx))
	})

	t.Run("should list the bookmarks with total", func(t *testing.T) {
		ctx, rec := newContext(http.MethodGet, "/threats/bookmarks/", "")

		bookmarkService := mocks.NewBookmarkService(t)
		bookmarkService.On("List", shared.GetSession(ctx).AccountID).Return([]dtos.BookmarkedThreatDTO{{BookmarkNotes: "a"}, {BookmarkNotes: "b"}}, nil)

		require.NoError(t, NewBookmarkController(bookmarkService).List(ctx))
		var res dtos.BookmarkListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Total)
	})
}

func TestFeedController(t *testing.T) {
	t.Run("should answer upstream failures with bad gateway", func(t *testing.T) {
		ctx, rec := newContext(http.MethodPost, "/feeds/fetch/abuseipdb/", "")
		ctx.SetParamNames("source")
		ctx.SetParamValues("abuseipdb")

		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "abuseipdb").Return(dtos.FeedResult{Source: "abuseipdb", Error: "AbuseIPDB API key not configured"}, nil)

		require.NoError(t, NewFeedController(feedService).Fetch(ctx))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"success":false,"source":"abuseipdb","error":"AbuseIPDB API key not configured"}`, rec.Body.String())
	})

	t.Run("should report added and total", func(t *testing.T) {
		ctx, rec := newContext(http.MethodPost, "/feeds/fetch/cisa/", "")
		ctx.SetParamNames("source")
		ctx.SetParamValues("cisa")

		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "cisa").Return(dtos.FeedResult{Source: "cisa", Success: true, Added: 1, Total: 2}, nil)

		require.NoError(t, NewFeedController(feedService).Fetch(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body["added"])
		assert.EqualValues(t, 2, body["total"])
	})

	t.Run("should pass unknown sources through", func(t *testing.T) {
		ctx, _ := newContext(http.MethodPost, "/feeds/fetch/nope/", "")
		ctx.SetParamNames("source")
		ctx.SetParamValues("nope")

		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "nope").Return(dtos.FeedResult{}, shared.ErrNotFound)

		assert.ErrorIs(t, NewFeedController(feedService).Fetch(ctx), shared.ErrNotFound)
	})
}
