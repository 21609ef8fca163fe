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
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/utils"
)

type AccountRepository interface {
	utils.Repository[uuid.UUID, models.Account, DB]
	FindByEmail(tx DB, email string) (models.Account, error)
}

// ThreatGrouping names a column active threats can be counted by
type ThreatGrouping string

const (
	GroupBySource   ThreatGrouping = "source"
	GroupBySeverity ThreatGrouping = "severity"
	GroupByCategory ThreatGrouping = "category"
)

type ThreatRepository interface {
	utils.Repository[int64, models.Threat, DB]
	ReadActive(tx DB, id int64) (models.Threat, error)
	FindExistingExternalIDs(tx DB, externalIDs []string) ([]string, error)
	// CreateIfAbsent inserts the threats and skips every external id which is already stored.
	// It returns the number of rows actually inserted.
	CreateIfAbsent(tx DB, threats []models.Threat) (int64, error)
	FindByFilterPaged(tx DB, filter ThreatFilter, sort ThreatSort, pageInfo PageInfo) (Paged[models.Threat], error)
	CountActive(tx DB, discoveredSince *time.Time) (int64, error)
	CountActiveGroupedBy(tx DB, grouping ThreatGrouping) (map[string]int64, error)
	CountActiveByDiscoveryDay(tx DB, since time.Time) ([]dtos.DailyTrend, error)
}

type BookmarkRepository interface {
	utils.Repository[int64, models.Bookmark, DB]
	FindByAccountAndThreat(tx DB, accountID uuid.UUID, threatID int64) (models.Bookmark, error)
	ListByAccountWithThreat(tx DB, accountID uuid.UUID) ([]models.Bookmark, error)
	UpdateNotes(tx DB, accountID uuid.UUID, threatID int64, notes string) (models.Bookmark, error)
	DeleteByAccountAndThreat(tx DB, accountID uuid.UUID, threatID int64) error
}

type RevokedTokenRepository interface {
	Revoke(tx DB, token *models.RevokedToken) error
	IsRevoked(tx DB, jti string) (bool, error)
	DeleteExpired(tx DB, now time.Time) (int64, error)
}

// IssuedToken is a signed access token handed out to a client
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(email, password string) (models.Account, IssuedToken, error)
	Login(email, password string) (models.Account, IssuedToken, error)
	// Authenticate verifies a raw bearer token. Failures are one of the ErrToken* values.
	Authenticate(rawToken string) (Session, error)
	Logout(session Session) error
	CurrentAccount(session Session) (models.Account, error)
	DeleteAccount(session Session) error
	PruneRevokedTokens() (int64, error)
}

type ThreatService interface {
	List(filter ThreatFilter, pageInfo PageInfo) (dtos.ThreatListResponse, error)
	Search(filter ThreatFilter, sort ThreatSort, pageInfo PageInfo) (dtos.ThreatListResponse, error)
	Read(accountID uuid.UUID, threatID int64) (dtos.ThreatDetailDTO, error)
	Stats() (dtos.ThreatStats, error)
}

type BookmarkService interface {
	Create(accountID uuid.UUID, threatID int64, notes string) (models.Bookmark, error)
	List(accountID uuid.UUID) ([]dtos.BookmarkedThreatDTO, error)
	Update(accountID uuid.UUID, threatID int64, notes *string) (models.Bookmark, error)
	Delete(accountID uuid.UUID, threatID int64) error
}

// Feed fetches one upstream source and normalizes every raw record into a threat.
// The returned slice has one entry per raw record.
type Feed interface {
	Descriptor() dtos.FeedSource
	Fetch(ctx context.Context) ([]models.Threat, error)
}

type FeedService interface {
	Sources() []dtos.FeedSource
	// FetchOne returns ErrNotFound for unknown sources. Upstream failures are reported in the result.
	FetchOne(ctx context.Context, sourceID string) (dtos.FeedResult, error)
	FetchAll(ctx context.Context) dtos.FeedRunSummary
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
