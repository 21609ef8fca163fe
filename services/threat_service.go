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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	recentThreatsWindow = 7 * 24 * time.Hour
	trendWindow         = 30 * 24 * time.Hour
)

type threatService struct {
	threatRepository   shared.ThreatRepository
	bookmarkRepository shared.BookmarkRepository
	now                func() time.Time
}

var _ shared.ThreatService = (*threatService)(nil)

func NewThreatService(threatRepository shared.ThreatRepository, bookmarkRepository shared.BookmarkRepository) *threatService {
	return &threatService{
		threatRepository:   threatRepository,
		bookmarkRepository: bookmarkRepository,
		now:                time.Now,
	}
}

func (s *threatService) List(filter shared.ThreatFilter, pageInfo shared.PageInfo) (dtos.ThreatListResponse, error) {
	return s.Search(filter, shared.DefaultThreatSort, pageInfo)
}

func (s *threatService) Search(filter shared.ThreatFilter, sort shared.ThreatSort, pageInfo shared.PageInfo) (dtos.ThreatListResponse, error) {
	paged, err := s.threatRepository.FindByFilterPaged(nil, filter, sort, pageInfo)
	if err != nil {
		return dtos.ThreatListResponse{}, errors.Wrap(err, "could not query threats")
	}

	return dtos.ThreatListResponse{
		Threats:     threatsToDTOs(paged.Data),
		Total:       paged.Total,
		Pages:       pageInfo.Pages(paged.Total),
		CurrentPage: pageInfo.Page,
		PerPage:     pageInfo.PageSize,
	}, nil
}

// threatsToDTOs skips malformed threats instead of failing the whole page
func threatsToDTOs(threats []models.Threat) []dtos.ThreatDTO {
	result := make([]dtos.ThreatDTO, 0, len(threats))
	for _, t := range threats {
		dto, err := dtos.ThreatToDTO(t)
		if err != nil {
			slog.Warn("skipping malformed threat", "threatID", t.ID, "err", err)
			continue
		}
		result = append(result, dto)
	}
	return result
}

func (s *threatService) Read(accountID uuid.UUID, threatID int64) (dtos.ThreatDetailDTO, error) {
	threat, err := s.threatRepository.ReadActive(nil, threatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.ThreatDetailDTO{}, errors.Wrap(shared.ErrNotFound, "threat not found")
		}
		return dtos.ThreatDetailDTO{}, errors.Wrap(err, "could not read threat")
	}

	dto, err := dtos.ThreatToDTO(threat)
	if err != nil {
		return dtos.ThreatDetailDTO{}, err
	}
	detail := dtos.ThreatDetailDTO{ThreatDTO: dto}

	bookmark, err := s.bookmarkRepository.FindByAccountAndThreat(nil, accountID, threatID)
	switch {
	case err == nil:
		detail.IsBookmarked = true
		detail.BookmarkNotes = &bookmark.Notes
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return dtos.ThreatDetailDTO{}, errors.Wrap(err, "could not read bookmark")
	}
	return detail, nil
}

func (s *threatService) Stats() (dtos.ThreatStats, error) {
	now := s.now().UTC()
	stats := dtos.ThreatStats{}

	var err error
	stats.TotalThreats, err = s.threatRepository.CountActive(nil, nil)
	if err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not count threats")
	}

	recentSince := now.Add(-recentThreatsWindow)
	stats.RecentThreats7d, err = s.threatRepository.CountActive(nil, &recentSince)
	if err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not count recent threats")
	}

	if stats.BySource, err = s.threatRepository.CountActiveGroupedBy(nil, shared.GroupBySource); err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not group threats by source")
	}
	if stats.BySeverity, err = s.threatRepository.CountActiveGroupedBy(nil, shared.GroupBySeverity); err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not group threats by severity")
	}
	if stats.ByType, err = s.threatRepository.CountActiveGroupedBy(nil, shared.GroupByCategory); err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not group threats by type")
	}

	stats.DailyTrends, err = s.threatRepository.CountActiveByDiscoveryDay(nil, now.Add(-trendWindow))
	if err != nil {
		return dtos.ThreatStats{}, errors.Wrap(err, "could not compute daily trends")
	}
	if stats.DailyTrends == nil {
		stats.DailyTrends = []dtos.DailyTrend{}
	}
	return stats, nil
}
