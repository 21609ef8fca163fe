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
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	databasetypes "github.com/l3montree-dev/threatintel/database/types"
	"github.com/l3montree-dev/threatintel/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatToDTO(t *testing.T) {
	discovered := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	ingested := time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)

	t.Run("should map the stored fields to the public names", func(t *testing.T) {
		dto, err := ThreatToDTO(models.Threat{
			ID:              7,
			ExternalID:      "CVE-2024-0001",
			Source:          models.ThreatSourceCISA,
			Category:        models.ThreatCategoryVulnerability,
			Title:           "Example",
			Severity:        models.SeverityCritical,
			ConfidenceScore: utils.Ptr(100),
			IndicatorFields: databasetypes.JSONB{"vendor": "acme"},
			DiscoveredAt:    &discovered,
			IngestedAt:      ingested,
			Active:          true,
		})
		require.NoError(t, err)

		assert.Equal(t, "CVE-2024-0001", dto.ThreatID)
		assert.Equal(t, "CISA", dto.Source)
		assert.Equal(t, "vulnerability", dto.ThreatType)
		assert.Equal(t, "critical", dto.Severity)
		assert.Equal(t, "acme", dto.Indicators["vendor"])
		assert.Equal(t, map[string]any{}, dto.Metadata)
		assert.Equal(t, "2024-01-02T00:00:00Z", *dto.DateDiscovered)
		assert.Equal(t, "2024-01-03T10:30:00Z", dto.DateAdded)
		assert.True(t, dto.IsActive)
	})

	t.Run("should keep an unknown discovery date as null", func(t *testing.T) {
		dto, err := ThreatToDTO(models.Threat{ID: 1, IngestedAt: ingested})
		require.NoError(t, err)
		assert.Nil(t, dto.DateDiscovered)
	})

	t.Run("should fail for payloads that cannot be encoded", func(t *testing.T) {
		_, err := ThreatToDTO(models.Threat{ID: 1, ContextFields: databasetypes.JSONB{"score": math.NaN()}})
		assert.Error(t, err)
	})
}

func TestBookmarkedThreatToDTO(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	b := models.Bookmark{
		ID:        3,
		AccountID: uuid.New(),
		ThreatID:  9,
		Threat:    models.Threat{ID: 9, ExternalID: "IP-1.2.3.4"},
		Notes:     "check firewall",
		CreatedAt: created,
	}

	dto, err := BookmarkedThreatToDTO(b)
	require.NoError(t, err)
	assert.Equal(t, int64(9), dto.ID)
	assert.Equal(t, "IP-1.2.3.4", dto.ThreatID)
	assert.Equal(t, "check firewall", dto.BookmarkNotes)
	assert.Equal(t, "2024-05-01T08:00:00Z", dto.BookmarkedAt)

	plain := BookmarkToDTO(b)
	assert.Equal(t, b.AccountID, plain.UserID)
	assert.Equal(t, int64(9), plain.ThreatID)
}
