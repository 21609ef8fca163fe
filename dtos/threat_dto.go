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

package dtos

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
)

const timeFormat = time.RFC3339

type ThreatDTO struct {
	ID              int64          `json:"id"`
	ThreatID        string         `json:"threat_id"`
	Source          string         `json:"source"`
	ThreatType      string         `json:"threat_type"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Severity        string         `json:"severity"`
	ConfidenceScore *int           `json:"confidence_score"`
	Indicators      map[string]any `json:"indicators"`
	Metadata        map[string]any `json:"metadata"`
	DateDiscovered  *string        `json:"date_discovered"`
	DateAdded       string         `json:"date_added"`
	IsActive        bool           `json:"is_active"`
}

// ThreatToDTO converts a stored threat into its public representation.
// It fails if one of the structured payloads cannot be encoded.
func ThreatToDTO(t models.Threat) (ThreatDTO, error) {
	indicators := map[string]any(t.IndicatorFields)
	if indicators == nil {
		indicators = map[string]any{}
	}
	metadata := map[string]any(t.ContextFields)
	if metadata == nil {
		metadata = map[string]any{}
	}

	if _, err := json.Marshal(indicators); err != nil {
		return ThreatDTO{}, fmt.Errorf("threat %d has malformed indicators: %w", t.ID, err)
	}
	if _, err := json.Marshal(metadata); err != nil {
		return ThreatDTO{}, fmt.Errorf("threat %d has malformed metadata: %w", t.ID, err)
	}

	var discovered *string
	if t.DiscoveredAt != nil {
		s := t.DiscoveredAt.UTC().Format(timeFormat)
		discovered = &s
	}

	return ThreatDTO{
		ID:              t.ID,
		ThreatID:        t.ExternalID,
		Source:          string(t.Source),
		ThreatType:      string(t.Category),
		Title:           t.Title,
		Description:     t.Description,
		Severity:        string(t.Severity),
		ConfidenceScore: t.ConfidenceScore,
		Indicators:      indicators,
		Metadata:        metadata,
		DateDiscovered:  discovered,
		DateAdded:       t.IngestedAt.UTC().Format(timeFormat),
		IsActive:        t.Active,
	}, nil
}

type ThreatDetailDTO struct {
	ThreatDTO
	IsBookmarked  bool    `json:"is_bookmarked"`
	BookmarkNotes *string `json:"bookmark_notes"`
}

type ThreatListResponse struct {
	Threats     []ThreatDTO `json:"threats"`
	Total       int64       `json:"total"`
	Pages       int         `json:"pages"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
}

type ThreatSearchRequest struct {
	Search        string   `json:"search"`
	Sources       []string `json:"sources"`
	Severities    []string `json:"severities" validate:"dive,oneof=low medium high critical"`
	Types         []string `json:"types"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	MinConfidence *int     `json:"min_confidence" validate:"omitempty,min=0,max=100"`
	SortBy        string   `json:"sort_by"`
	SortOrder     string   `json:"sort_order" validate:"omitempty,oneof=asc desc ASC DESC"`
	Page          *int     `json:"page"`
	PerPage       *int     `json:"per_page"`
}

type DailyTrend struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ThreatStats struct {
	TotalThreats    int64            `json:"total_threats"`
	RecentThreats7d int64            `json:"recent_threats_7d"`
	BySource        map[string]int64 `json:"by_source"`
	BySeverity      map[string]int64 `json:"by_severity"`
	ByType          map[string]int64 `json:"by_type"`
	DailyTrends     []DailyTrend     `json:"daily_trends"`
}
