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

package shared_test

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/l3montree-dev/threatintel/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) shared.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should fall back to the defaults", func(t *testing.T) {
		pageInfo, err := shared.GetPageInfo(newContext("/api/v1/threats/"))
		require.NoError(t, err)
		assert.Equal(t, shared.PageInfo{Page: 1, PageSize: 20}, pageInfo)
	})

	t.Run("should read page and per_page", func(t *testing.T) {
		pageInfo, err := shared.GetPageInfo(newContext("/api/v1/threats/?page=2&per_page=10"))
		require.NoError(t, err)
		assert.Equal(t, shared.PageInfo{Page: 2, PageSize: 10}, pageInfo)
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		for _, query := range []string{"page=abc", "page=0", "per_page=-1", "per_page=101", "per_page=1.5"} {
			_, err := shared.GetPageInfo(newContext("/api/v1/threats/?" + query))
			assert.ErrorIs(t, err, shared.ErrValidation, query)
		}
	})
}

func TestNewPageInfo(t *testing.T) {
	lastPage := math.MaxInt32/100 + 1

	t.Run("should accept the last addressable page", func(t *testing.T) {
		pageInfo, err := shared.NewPageInfo(lastPage, 100)
		require.NoError(t, err)
		assert.Equal(t, lastPage, pageInfo.Page)
	})

	t.Run("should reject pages whose offset overflows", func(t *testing.T) {
		for _, page := range []int{lastPage + 1, math.MaxInt64} {
			_, err := shared.NewPageInfo(page, 100)
			assert.ErrorIs(t, err, shared.ErrValidation, page)
		}
	})
}

func TestPageInfoPages(t *testing.T) {
	p := shared.PageInfo{Page: 2, PageSize: 10}
	assert.Equal(t, 3, p.Pages(25))
	assert.Equal(t, 2, p.Pages(20))
	assert.Equal(t, 0, p.Pages(0))
}

func TestGetThreatID(t *testing.T) {
	ctx := newContext("/")
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")
	id, err := shared.GetThreatID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	ctx.SetParamValues("abc")
	_, err = shared.GetThreatID(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestParseThreatSort(t *testing.T) {
	t.Run("defaults to date_discovered desc", func(t *testing.T) {
		sort, err := shared.ParseThreatSort("", "")
		require.NoError(t, err)
		assert.Equal(t, shared.DefaultThreatSort, sort)
	})

	t.Run("accepts every known key", func(t *testing.T) {
		for _, key := range []string{"id", "threat_id", "source", "threat_type", "title", "severity", "confidence_score", "date_discovered", "date_added"} {
			sort, err := shared.ParseThreatSort(key, "ASC")
			require.NoError(t, err)
			assert.Equal(t, shared.SortKey(key), sort.Key)
			assert.Equal(t, shared.SortAsc, sort.Direction)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := shared.ParseThreatSort("password_hash", "asc")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects unknown directions", func(t *testing.T) {
		_, err := shared.ParseThreatSort("title", "sideways")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestParseDateBoundary(t *testing.T) {
	t.Run("empty means unbounded", func(t *testing.T) {
		d, err := shared.ParseDateBoundary("", false)
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("bare date as lower bound starts at midnight", func(t *testing.T) {
		d, err := shared.ParseDateBoundary("2024-03-01", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("bare date as upper bound covers the whole day", func(t *testing.T) {
		d, err := shared.ParseDateBoundary("2024-03-01", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), *d)
	})

	t.Run("rfc3339 is kept as is", func(t *testing.T) {
		d, err := shared.ParseDateBoundary("2024-03-01T12:00:00+02:00", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), *d)
	})

	t.Run("malformed dates are validation errors", func(t *testing.T) {
		_, err := shared.ParseDateBoundary("01/03/2024", false)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}
