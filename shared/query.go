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
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/pkg/errors"
)

// ThreatFilter restricts a read over the active threats.
// Empty sets and nil pointers do not restrict anything.
type ThreatFilter struct {
	Sources        []models.ThreatSource
	Categories     []models.ThreatCategory
	Severities     []models.Severity
	Search         string
	DiscoveredFrom *time.Time
	DiscoveredTo   *time.Time
	MinConfidence  *int
}

type SortKey string

const (
	SortKeyID              SortKey = "id"
	SortKeyExternalID      SortKey = "threat_id"
	SortKeySource          SortKey = "source"
	SortKeyCategory        SortKey = "threat_type"
	SortKeyTitle           SortKey = "title"
	SortKeySeverity        SortKey = "severity"
	SortKeyConfidenceScore SortKey = "confidence_score"
	SortKeyDiscoveredAt    SortKey = "date_discovered"
	SortKeyIngestedAt      SortKey = "date_added"
)

var sortKeys = []SortKey{
	SortKeyID,
	SortKeyExternalID,
	SortKeySource,
	SortKeyCategory,
	SortKeyTitle,
	SortKeySeverity,
	SortKeyConfidenceScore,
	SortKeyDiscoveredAt,
	SortKeyIngestedAt,
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type ThreatSort struct {
	Key       SortKey
	Direction SortDirection
}

var DefaultThreatSort = ThreatSort{Key: SortKeyDiscoveredAt, Direction: SortDesc}

// ParseThreatSort maps the public sort parameters to a ThreatSort.
// Empty values fall back to the default ordering, unknown ones are rejected.
func ParseThreatSort(key, direction string) (ThreatSort, error) {
	sort := DefaultThreatSort

	key = strings.TrimSpace(key)
	if key != "" {
		found := false
		for _, k := range sortKeys {
			if string(k) == key {
				sort.Key = k
				found = true
				break
			}
		}
		if !found {
			return ThreatSort{}, errors.Wrapf(ErrValidation, "unknown sort field %q", key)
		}
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "":
	case string(SortAsc):
		sort.Direction = SortAsc
	case string(SortDesc):
		sort.Direction = SortDesc
	default:
		return ThreatSort{}, errors.Wrapf(ErrValidation, "sort order must be asc or desc, got %q", direction)
	}

	return sort, nil
}

// ParseDateBoundary accepts YYYY-MM-DD or RFC 3339 timestamps.
// A bare date used as upper bound covers the whole day.
func ParseDateBoundary(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errors.Wrapf(ErrValidation, "invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
