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

package feeds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/mocks"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func runInTransaction(f func(*gorm.DB) error) error {
	return f(nil)
}

func externalIDs(threats []models.Threat) []string {
	ids := make([]string, len(threats))
	for i, t := range threats {
		ids[i] = t.ExternalID
	}
	return ids
}

func testFeedConfig() config.FeedConfig {
	return config.FeedConfig{
		CISAKEVURL:   "http://localhost/kev.json",
		AbuseIPDBURL: "http://localhost/blacklist",
		URLhausURL:   "http://localhost/recent",
		Timeout:      time.Second,
	}
}

func stubFeed(t *testing.T, id string, threats []models.Threat, err error) *mocks.Feed {
	feed := mocks.NewFeed(t)
	feed.On("Descriptor").Return(dtos.FeedSource{ID: id, Name: id}).Maybe()
	feed.On("Fetch", mock.Anything).Return(threats, err).Maybe()
	return feed
}

func TestFeedServiceFetchOne(t *testing.T) {
	t.Run("should only add threats which are not stored yet", func(t *testing.T) {
		srv := serveJSON(t, http.StatusOK, cisaPayload, nil)

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, []string{"CVE-2024-0001", "CVE-2024-0002"}).Return([]string{"CVE-2024-0001"}, nil)
		threatRepository.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(threats []models.Threat) bool {
			return len(threats) == 1 && threats[0].ExternalID == "CVE-2024-0002" && threats[0].Active && !threats[0].IngestedAt.IsZero()
		})).Return(int64(1), nil)

		s := NewFeedService([]shared.Feed{NewCISAKEVFeed(srv.Client(), srv.URL)}, threatRepository, 30*time.Second)

		res, err := s.FetchOne(context.Background(), SourceIDCISA)
		require.NoError(t, err)
		assert.Equal(t, dtos.FeedResult{Source: SourceIDCISA, Success: true, Added: 1, Total: 2}, res)
	})

	t.Run("should add nothing on a second run against the same payload", func(t *testing.T) {
		threats := []models.Threat{{ExternalID: "IP-192.0.2.1"}, {ExternalID: "IP-192.0.2.2"}}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, mock.Anything).Return(externalIDs(threats), nil)
		threatRepository.On("CreateIfAbsent", mock.Anything, []models.Threat{}).Return(int64(0), nil)

		s := NewFeedService([]shared.Feed{stubFeed(t, "abuseipdb", threats, nil)}, threatRepository, time.Second)

		res, err := s.FetchOne(context.Background(), "abuseipdb")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 0, res.Added)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("should count duplicates inside one payload once", func(t *testing.T) {
		threats := []models.Threat{{ExternalID: "URL-1"}, {ExternalID: "URL-1"}, {ExternalID: "URL-2"}}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, []string{"URL-1", "URL-2"}).Return([]string{}, nil)
		threatRepository.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(threats []models.Threat) bool {
			return len(threats) == 2
		})).Return(int64(2), nil)

		s := NewFeedService([]shared.Feed{stubFeed(t, "urlhaus", threats, nil)}, threatRepository, time.Second)

		res, err := s.FetchOne(context.Background(), "urlhaus")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Added)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("should report upstream failures without touching the store", func(t *testing.T) {
		threatRepository := mocks.NewThreatRepository(t)

		s := NewFeedService([]shared.Feed{stubFeed(t, "cisa", nil, errors.New("upstream returned status 500"))}, threatRepository, time.Second)

		res, err := s.FetchOne(context.Background(), "cisa")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "upstream returned status 500", res.Error)
		assert.Equal(t, 0, res.Added)
	})

	t.Run("should convert a timeout into a failure result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		defer srv.Close()

		threatRepository := mocks.NewThreatRepository(t)
		s := NewFeedService([]shared.Feed{NewCISAKEVFeed(srv.Client(), srv.URL)}, threatRepository, 50*time.Millisecond)

		res, err := s.FetchOne(context.Background(), SourceIDCISA)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "timed out")
	})

	t.Run("should finish the run after the triggering caller went away", func(t *testing.T) {
		threats := []models.Threat{{ExternalID: "CVE-2024-0001"}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		feed := mocks.NewFeed(t)
		feed.On("Descriptor").Return(dtos.FeedSource{ID: "cisa", Name: "cisa"}).Maybe()
		feed.On("Fetch", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		})).Return(threats, nil)

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, []string{"CVE-2024-0001"}).Return([]string{}, nil)
		threatRepository.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(int64(1), nil)

		s := NewFeedService([]shared.Feed{feed}, threatRepository, time.Second)

		res, err := s.FetchOne(ctx, "cisa")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.Added)
	})

	t.Run("should fail the whole run if the store fails", func(t *testing.T) {
		threats := []models.Threat{{ExternalID: "CVE-1"}}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, mock.Anything).Return([]string{}, nil)
		threatRepository.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))

		s := NewFeedService([]shared.Feed{stubFeed(t, "cisa", threats, nil)}, threatRepository, time.Second)

		res, err := s.FetchOne(context.Background(), "cisa")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "connection reset", res.Error)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("should retry once after a racing insert", func(t *testing.T) {
		threats := []models.Threat{{ExternalID: "CVE-1"}}

		threatRepository := mocks.NewThreatRepository(t)
		threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
		threatRepository.On("FindExistingExternalIDs", mock.Anything, mock.Anything).Return([]string{}, nil).Once()
		threatRepository.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(int64(0), &pgconn.PgError{Code: "23505"}).Once()
		threatRepository.On("FindExistingExternalIDs", mock.Anything, mock.Anything).Return([]string{"CVE-1"}, nil).Once()
		threatRepository.On("CreateIfAbsent", mock.Anything, []models.Threat{}).Return(int64(0), nil).Once()

		s := NewFeedService([]shared.Feed{stubFeed(t, "cisa", threats, nil)}, threatRepository, time.Second)

		res, err := s.FetchOne(context.Background(), "cisa")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 0, res.Added)
	})

	t.Run("should return not found for unknown sources", func(t *testing.T) {
		s := NewFeedService(nil, mocks.NewThreatRepository(t), time.Second)

		_, err := s.FetchOne(context.Background(), "nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestFeedServiceFetchAll(t *testing.T) {
	threatRepository := mocks.NewThreatRepository(t)
	threatRepository.On("Transaction", mock.Anything).Return(runInTransaction)
	threatRepository.On("FindExistingExternalIDs", mock.Anything, mock.Anything).Return([]string{}, nil)
	threatRepository.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(func(_ *gorm.DB, threats []models.Threat) (int64, error) {
		return int64(len(threats)), nil
	})

	s := NewFeedService([]shared.Feed{
		stubFeed(t, "cisa", []models.Threat{{ExternalID: "CVE-1"}, {ExternalID: "CVE-2"}}, nil),
		stubFeed(t, "abuseipdb", nil, ErrAbuseIPDBKeyMissing),
		stubFeed(t, "urlhaus", []models.Threat{{ExternalID: "URL-1"}}, nil),
	}, threatRepository, time.Second)

	summary := s.FetchAll(context.Background())

	require.Len(t, summary.Results, 3)
	assert.True(t, summary.Results["cisa"].Success)
	assert.Equal(t, 2, summary.Results["cisa"].Added)
	assert.False(t, summary.Results["abuseipdb"].Success)
	assert.Equal(t, "AbuseIPDB API key not configured", summary.Results["abuseipdb"].Error)
	assert.True(t, summary.Results["urlhaus"].Success)
	assert.Equal(t, 3, summary.TotalAdded)
}

func TestFeedServiceSources(t *testing.T) {
	s := NewFeedService(NewFeeds(testFeedConfig(), http.DefaultClient), mocks.NewThreatRepository(t), time.Second)

	sources := s.Sources()
	require.Len(t, sources, 3)
	assert.Equal(t, []string{SourceIDCISA, SourceIDAbuseIPDB, SourceIDURLhaus}, []string{sources[0].ID, sources[1].ID, sources[2].ID})
	assert.True(t, sources[1].RequiresAPIKey)
	assert.False(t, sources[0].RequiresAPIKey)
	assert.Equal(t, "malware_url", sources[2].Type)
}
