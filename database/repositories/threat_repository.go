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

package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/l3montree-dev/threatintel/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keeps the IN lists well below the bind parameter limit
const externalIDLookupChunkSize = 1000

var threatSortColumns = map[shared.SortKey]string{
	shared.SortKeyID:              "id",
	shared.SortKeyExternalID:      "external_id",
	shared.SortKeySource:          "source",
	shared.SortKeyCategory:        "category",
	shared.SortKeyTitle:           "title",
	shared.SortKeySeverity:        "CASE severity WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 WHEN 'critical' THEN 4 ELSE 0 END",
	shared.SortKeyConfidenceScore: "confidence_score",
	shared.SortKeyDiscoveredAt:    "discovered_at",
	shared.SortKeyIngestedAt:      "ingested_at",
}

var threatGroupingColumns = map[shared.ThreatGrouping]string{
	shared.GroupBySource:   "source",
	shared.GroupBySeverity: "severity",
	shared.GroupByCategory: "category",
}

type dailyCount struct {
	Day   datatypes.Date
	Count int64
}

type threatRepository struct {
	*GormRepository[int64, models.Threat]
	db *gorm.DB
}

func NewThreatRepository(db *gorm.DB) *threatRepository {
	return &threatRepository{
		db:             db,
		GormRepository: newGormRepository[int64, models.Threat](db),
	}
}

func (r *threatRepository) ReadActive(tx *gorm.DB, id int64) (models.Threat, error) {
	var t models.Threat
	err := r.GetDB(tx).Where("id = ? AND active = ?", id, true).First(&t).Error
	return t, err
}

func (r *threatRepository) FindExistingExternalIDs(tx *gorm.DB, externalIDs []string) ([]string, error) {
	existing := make([]string, 0)
	for _, chunk := range utils.Chunk(externalIDs, externalIDLookupChunkSize) {
		if len(chunk) == 0 {
			continue
		}
		var found []string
		if err := r.GetDB(tx).Model(&models.Threat{}).Where("external_id IN ?", chunk).Pluck("external_id", &found).Error; err != nil {
			return nil, err
		}
		existing = append(existing, found...)
	}
	return existing, nil
}

func (r *threatRepository) CreateIfAbsent(tx *gorm.DB, threats []models.Threat) (int64, error) {
	return r.createBatchIgnoringConflicts(tx, threats, []clause.Column{{Name: "external_id"}})
}

func applyThreatFilter(db *gorm.DB, filter shared.ThreatFilter) *gorm.DB {
	db = db.Where("active = ?", true)

	if len(filter.Sources) > 0 {
		db = db.Where("source IN ?", utils.Map(filter.Sources, func(s models.ThreatSource) string { return string(s) }))
	}
	if len(filter.Categories) > 0 {
		db = db.Where("category IN ?", utils.Map(filter.Categories, func(c models.ThreatCategory) string { return string(c) }))
	}
	if len(filter.Severities) > 0 {
		db = db.Where("severity IN ?", utils.Map(filter.Severities, func(s models.Severity) string { return string(s) }))
	}
	if filter.Search != "" {
		term := "%" + escapeLike(filter.Search) + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ? OR external_id ILIKE ?)", term, term, term)
	}
	if filter.DiscoveredFrom != nil {
		db = db.Where("discovered_at >= ?", *filter.DiscoveredFrom)
	}
	if filter.DiscoveredTo != nil {
		db = db.Where("discovered_at <= ?", *filter.DiscoveredTo)
	}
	if filter.MinConfidence != nil {
		db = db.Where("confidence_score >= ?", *filter.MinConfidence)
	}
	return db
}

// escapeLike makes sure the user input is matched literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func threatOrder(sort shared.ThreatSort) (string, error) {
	column, ok := threatSortColumns[sort.Key]
	if !ok {
		return "", fmt.Errorf("unsupported sort key %q", sort.Key)
	}
	direction := "DESC"
	if sort.Direction == shared.SortAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s NULLS LAST, id DESC", column, direction), nil
}

func (r *threatRepository) FindByFilterPaged(tx *gorm.DB, filter shared.ThreatFilter, sort shared.ThreatSort, pageInfo shared.PageInfo) (shared.Paged[models.Threat], error) {
	order, err := threatOrder(sort)
	if err != nil {
		return shared.Paged[models.Threat]{}, err
	}

	var total int64
	if err := applyThreatFilter(r.GetDB(tx).Model(&models.Threat{}), filter).Count(&total).Error; err != nil {
		return shared.Paged[models.Threat]{}, err
	}

	threats := make([]models.Threat, 0, pageInfo.PageSize)
	err = pageInfo.ApplyOnDB(applyThreatFilter(r.GetDB(tx).Model(&models.Threat{}), filter)).
		Order(order).
		Find(&threats).Error
	if err != nil {
		return shared.Paged[models.Threat]{}, err
	}

	return shared.NewPaged(pageInfo, total, threats), nil
}

func (r *threatRepository) CountActive(tx *gorm.DB, discoveredSince *time.Time) (int64, error) {
	var count int64
	err := applyThreatFilter(r.GetDB(tx).Model(&models.Threat{}), shared.ThreatFilter{DiscoveredFrom: discoveredSince}).Count(&count).Error
	return count, err
}

func (r *threatRepository) CountActiveGroupedBy(tx *gorm.DB, grouping shared.ThreatGrouping) (map[string]int64, error) {
	column, ok := threatGroupingColumns[grouping]
	if !ok {
		return nil, fmt.Errorf("unsupported grouping %q", grouping)
	}

	var rows []struct {
		Key   string
		Count int64
	}
	err := r.GetDB(tx).Model(&models.Threat{}).
		Select(fmt.Sprintf("COALESCE(%s, 'unknown') AS key, COUNT(*) AS count", column)).
		Where("active = ?", true).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(rows))
	for _, row := range rows {
		res[row.Key] += row.Count
	}
	return res, nil
}

func (r *threatRepository) CountActiveByDiscoveryDay(tx *gorm.DB, since time.Time) ([]dtos.DailyTrend, error) {
	var rows []dailyCount
	err := r.GetDB(tx).Model(&models.Threat{}).
		Select("DATE(discovered_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count").
		Where("active = ? AND discovered_at >= ?", true, since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return utils.Map(rows, func(row dailyCount) dtos.DailyTrend {
		return dtos.DailyTrend{
			Date:  time.Time(row.Day).Format(time.DateOnly),
			Count: row.Count,
		}
	}), nil
}
