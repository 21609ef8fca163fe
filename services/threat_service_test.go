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

package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	databasetypes "github.com/l3montree-dev/threatintel/database/types"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/mocks"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func threatsWithIDs(from, to int64) []models.Threat {
	threats := make([]models.Threat, 0, to-from+1)
	for id := from; id <= to; id++ {
		threats = append(threats, models.Threat{ID: id, Active: true})
	}
	return threats
}

func TestThreatServiceList(t *testing.T) {
	t.Run("should compute the pages from the total", func(t *testing.T) {
		pageInfo := shared.PageInfo{Page: 2, PageSize: 10}
		filter := shared.ThreatFilter{Categories: []models.ThreatCategory{models.ThreatCategoryVulnerability}}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("FindByFilterPaged", mock.Anything, filter, shared.DefaultThreatSort, pageInfo).
			Return(shared.NewPaged(pageInfo, 25, threatsWithIDs(11, 20)), nil)

		s := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t))

		res, err := s.List(filter, pageInfo)
		require.NoError(t, err)
		assert.Len(t, res.Threats, 10)
		assert.Equal(t, int64(11), res.Threats[0].ID)
		assert.Equal(t, int64(25), res.Total)
		assert.Equal(t, 3, res.Pages)
		assert.Equal(t, 2, res.CurrentPage)
		assert.Equal(t, 10, res.PerPage)
	})

	t.Run("should skip threats which cannot be serialized", func(t *testing.T) {
		pageInfo := shared.PageInfo{Page: 1, PageSize: 20}
		threats := threatsWithIDs(1, 3)
		threats[1].ContextFields = databasetypes.JSONB{"score": math.Inf(1)}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("FindByFilterPaged", mock.Anything, mock.Anything, mock.Anything, pageInfo).
			Return(shared.NewPaged(pageInfo, 3, threats), nil)

		s := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t))

		res, err := s.List(shared.ThreatFilter{}, pageInfo)
		require.NoError(t, err)
		require.Len(t, res.Threats, 2)
		assert.Equal(t, int64(1), res.Threats[0].ID)
		assert.Equal(t, int64(3), res.Threats[1].ID)
		assert.Equal(t, int64(3), res.Total)
	})

	t.Run("should return an empty list instead of null", func(t *testing.T) {
		pageInfo := shared.PageInfo{Page: 1, PageSize: 20}
		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("FindByFilterPaged", mock.Anything, mock.Anything, mock.Anything, pageInfo).
			Return(shared.NewPaged[models.Threat](pageInfo, 0, nil), nil)

		s := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t))

		res, err := s.List(shared.ThreatFilter{}, pageInfo)
		require.NoError(t, err)
		assert.NotNil(t, res.Threats)
		assert.Equal(t, 0, res.Pages)
	})
}

func TestThreatServiceSearch(t *testing.T) {
	sort := shared.ThreatSort{Key: shared.SortKeySeverity, Direction: shared.SortAsc}
	pageInfo := shared.PageInfo{Page: 1, PageSize: 20}

	threatRepository := mocks.NewThreatRepository(t)
	threatRepository.On("FindByFilterPaged", mock.Anything, mock.Anything, sort, pageInfo).Return(shared.Paged[models.Threat]{}, errors.New("boom"))

	s := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t))

	_, err := s.Search(shared.ThreatFilter{}, sort, pageInfo)
	assert.Error(t, err)
}

func TestThreatServiceRead(t *testing.T) {
	accountID := uuid.New()

	t.Run("should mark bookmarked threats", func(t *testing.T) {
		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("ReadActive", mock.Anything, int64(5)).Return(models.Threat{ID: 5, Active: true}, nil)
		bookmarkRepository := mocks.NewBookmarkRepository(t)
		bookmarkRepository.On("FindByAccountAndThreat", mock.Anything, accountID, int64(5)).Return(models.Bookmark{Notes: "check"}, nil)

		res, err := NewThreatService(threatRepository, bookmarkRepository).Read(accountID, 5)
		require.NoError(t, err)
		assert.True(t, res.IsBookmarked)
		require.NotNil(t, res.BookmarkNotes)
		assert.Equal(t, "check", *res.BookmarkNotes)
	})

	t.Run("should leave the notes empty for threats which are not bookmarked", func(t *testing.T) {
		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("ReadActive", mock.Anything, int64(5)).Return(models.Threat{ID: 5, Active: true}, nil)
		bookmarkRepository := mocks.NewBookmarkRepository(t)
		bookmarkRepository.On("FindByAccountAndThreat", mock.Anything, accountID, int64(5)).Return(models.Bookmark{}, gorm.ErrRecordNotFound)

		res, err := NewThreatService(threatRepository, bookmarkRepository).Read(accountID, 5)
		require.NoError(t, err)
		assert.False(t, res.IsBookmarked)
		assert.Nil(t, res.BookmarkNotes)
	})

	t.Run("should report missing or inactive threats as not found", func(t *testing.T) {
		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("ReadActive", mock.Anything, int64(5)).Return(models.Threat{}, gorm.ErrRecordNotFound)

		_, err := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t)).Read(accountID, 5)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestThreatServiceStats(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	threatRepository := mocks.NewThreatRepository(t)
	threatRepository.On("CountActive", mock.Anything, (*time.Time)(nil)).Return(int64(10), nil)
	threatRepository.On("CountActive", mock.Anything, mock.MatchedBy(func(since *time.Time) bool {
		return since != nil && since.Equal(now.Add(-7*24*time.Hour))
	})).Return(int64(4), nil)
	threatRepository.On("CountActiveGroupedBy", mock.Anything, shared.GroupBySource).Return(map[string]int64{"CISA": 6, "URLhaus": 4}, nil)
	threatRepository.On("CountActiveGroupedBy", mock.Anything, shared.GroupBySeverity).Return(map[string]int64{"critical": 6, "low": 4}, nil)
	threatRepository.On("CountActiveGroupedBy", mock.Anything, shared.GroupByCategory).Return(map[string]int64{"vulnerability": 6, "malware_url": 4}, nil)
	threatRepository.On("CountActiveByDiscoveryDay", mock.Anything, now.Add(-30*24*time.Hour)).Return([]dtos.DailyTrend{{Date: "2024-06-29", Count: 4}}, nil)

	s := NewThreatService(threatRepository, mocks.NewBookmarkRepository(t))
	s.now = func() time.Time { return now }

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalThreats)
	assert.Equal(t, int64(4), stats.RecentThreats7d)
	assert.Equal(t, map[string]int64{"CISA": 6, "URLhaus": 4}, stats.BySource)
	assert.Equal(t, int64(6), stats.ByType["vulnerability"])
	assert.Equal(t, []dtos.DailyTrend{{Date: "2024-06-29", Count: 4}}, stats.DailyTrends)

	var sum int64
	for _, c := range stats.BySource {
		sum += c
	}
	assert.Equal(t, stats.TotalThreats, sum)
}
