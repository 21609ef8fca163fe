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
	"testing"

	"github.com/l3montree-dev/threatintel/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreatOrder(t *testing.T) {
	t.Run("default order puts unknown discovery dates last", func(t *testing.T) {
		order, err := threatOrder(shared.DefaultThreatSort)
		require.NoError(t, err)
		assert.Equal(t, "discovered_at DESC NULLS LAST, id DESC", order)
	})

	t.Run("ascending order keeps nulls last", func(t *testing.T) {
		order, err := threatOrder(shared.ThreatSort{Key: shared.SortKeyDiscoveredAt, Direction: shared.SortAsc})
		require.NoError(t, err)
		assert.Equal(t, "discovered_at ASC NULLS LAST, id DESC", order)
	})

	t.Run("severity is sorted by rank", func(t *testing.T) {
		order, err := threatOrder(shared.ThreatSort{Key: shared.SortKeySeverity, Direction: shared.SortAsc})
		require.NoError(t, err)
		assert.Contains(t, order, "WHEN 'critical' THEN 4")
	})

	t.Run("every public sort key is mapped", func(t *testing.T) {
		for _, key := range []string{"id", "threat_id", "source", "threat_type", "title", "severity", "confidence_score", "date_discovered", "date_added"} {
			sort, err := shared.ParseThreatSort(key, "")
			require.NoError(t, err)
			_, err = threatOrder(sort)
			assert.NoError(t, err, key)
		}
	})

	t.Run("unknown keys never reach the query", func(t *testing.T) {
		_, err := threatOrder(shared.ThreatSort{Key: "password_hash; DROP TABLE threats"})
		assert.Error(t, err)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `CVE\_2024`, escapeLike("CVE_2024"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}
