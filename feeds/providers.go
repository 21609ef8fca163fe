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
	"github.com/l3montree-dev/threatintel/common"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/shared"
	"go.uber.org/fx"
)

// NewFeeds returns every known feed in catalog order
func NewFeeds(cfg config.FeedConfig, httpClient shared.HTTPClient) []shared.Feed {
	return []shared.Feed{
		NewCISAKEVFeed(httpClient, cfg.CISAKEVURL),
		NewAbuseIPDBFeed(httpClient, cfg.AbuseIPDBURL, cfg.AbuseIPDBAPIKey),
		NewURLhausFeed(httpClient, cfg.URLhausURL, cfg.URLhausAuthKey),
	}
}

func NewFeedServiceFromConfig(cfg config.FeedConfig, threatRepository shared.ThreatRepository) *feedService {
	return NewFeedService(NewFeeds(cfg, common.NewHTTPClient(cfg.Timeout)), threatRepository, cfg.Timeout)
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewFeedServiceFromConfig, fx.As(new(shared.FeedService)))),
)
