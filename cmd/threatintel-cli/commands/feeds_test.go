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

package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/feeds"
	"github.com/l3montree-dev/threatintel/mocks"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalog() []dtos.FeedSource {
	return feeds.NewFeedService(feeds.NewFeeds(config.FeedConfig{}, nil), nil, 0).Sources()
}

// rowFor returns the rendered table row mentioning needle
func rowFor(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no row contains %q in\n%s", needle, out)
	return ""
}

func TestPrintSources(t *testing.T) {
	var out bytes.Buffer
	printSources(&out, catalog())

	s := out.String()
	assert.Less(t, strings.Index(s, "cisa"), strings.Index(s, "abuseipdb"))
	assert.Less(t, strings.Index(s, "abuseipdb"), strings.Index(s, "urlhaus"))
	assert.Contains(t, rowFor(t, s, "abuseipdb"), "required")
	assert.NotContains(t, rowFor(t, s, "urlhaus"), "required")
	assert.Contains(t, rowFor(t, s, "cisa"), "vulnerability")
}

func TestRunFetch(t *testing.T) {
	t.Run("should print added and total for a single source", func(t *testing.T) {
		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "cisa").Return(dtos.FeedResult{Source: "cisa", Success: true, Added: 3, Total: 5}, nil)

		var out bytes.Buffer
		require.NoError(t, runFetch(context.Background(), &out, feedService, "cisa"))

		row := rowFor(t, out.String(), "cisa")
		assert.Contains(t, row, "ok")
		assert.Contains(t, row, "3")
		assert.Contains(t, row, "5")
	})

	t.Run("should fail when the source failed", func(t *testing.T) {
		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "abuseipdb").Return(dtos.FeedResult{Source: "abuseipdb", Error: "AbuseIPDB API key not configured"}, nil)

		var out bytes.Buffer
		assert.Error(t, runFetch(context.Background(), &out, feedService, "abuseipdb"))

		row := rowFor(t, out.String(), "abuseipdb")
		assert.Contains(t, row, "failed")
		assert.Contains(t, row, "AbuseIPDB API key not configured")
	})

	t.Run("should pass unknown sources through", func(t *testing.T) {
		feedService := mocks.NewFeedService(t)
		feedService.On("FetchOne", mock.Anything, "nope").Return(dtos.FeedResult{}, shared.ErrNotFound)

		assert.ErrorIs(t, runFetch(context.Background(), &bytes.Buffer{}, feedService, "nope"), shared.ErrNotFound)
	})

	t.Run("should print every source in catalog order for all", func(t *testing.T) {
		feedService := mocks.NewFeedService(t)
		feedService.On("FetchAll", mock.Anything).Return(dtos.FeedRunSummary{
			Results: map[string]dtos.FeedResult{
				"urlhaus":   {Source: "urlhaus", Success: true, Added: 1, Total: 1},
				"cisa":      {Source: "cisa", Success: true, Added: 2, Total: 2},
				"abuseipdb": {Source: "abuseipdb", Error: "boom"},
			},
			TotalAdded: 3,
		})
		feedService.On("Sources").Return(catalog())

		var out bytes.Buffer
		require.NoError(t, runFetch(context.Background(), &out, feedService, "all"))

		s := out.String()
		assert.Less(t, strings.Index(s, "cisa"), strings.Index(s, "abuseipdb"))
		assert.Less(t, strings.Index(s, "abuseipdb"), strings.Index(s, "urlhaus"))
		assert.Contains(t, rowFor(t, s, "abuseipdb"), "boom")
	})
}
