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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	databasetypes "github.com/l3montree-dev/threatintel/database/types"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
)

const maxDescriptionLength = 500

type urlhausResponse struct {
	QueryStatus string         `json:"query_status"`
	URLs        []urlhausEntry `json:"urls"`
}

type urlhausEntry struct {
	ID        flexString `json:"id"`
	URL       string     `json:"url"`
	Host      string     `json:"host"`
	URLStatus *string    `json:"url_status"`
	Threat    string     `json:"threat"`
	Tags      []string   `json:"tags"`
	Reporter  *string    `json:"reporter"`
	Larted    flexBool   `json:"larted"`
	DateAdded string     `json:"dateadded"`
}

type urlhausFeed struct {
	httpClient shared.HTTPClient
	url        string
	authKey    string
}

func NewURLhausFeed(httpClient shared.HTTPClient, feedURL, authKey string) *urlhausFeed {
	return &urlhausFeed{
		httpClient: httpClient,
		url:        feedURL,
		authKey:    authKey,
	}
}

func (f *urlhausFeed) Descriptor() dtos.FeedSource {
	return urlhausDescriptor
}

func (f *urlhausFeed) Fetch(ctx context.Context) ([]models.Threat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.authKey != "" {
		req.Header.Set("Auth-Key", f.authKey)
	}

	var response urlhausResponse
	if err := doJSON(f.httpClient, req, &response); err != nil {
		return nil, err
	}
	if response.QueryStatus != "ok" {
		return nil, fmt.Errorf("URLhaus API returned error: %s", response.QueryStatus)
	}

	threats := make([]models.Threat, 0, len(response.URLs))
	for i, entry := range response.URLs {
		threat, err := entry.toThreat()
		if err != nil {
			return nil, fmt.Errorf("url %d: %w", i, err)
		}
		threats = append(threats, threat)
	}
	return threats, nil
}

func (e urlhausEntry) toThreat() (models.Threat, error) {
	id := strings.TrimSpace(string(e.ID))
	if id == "" {
		return models.Threat{}, fmt.Errorf("missing id")
	}

	discoveredAt, err := parseDateAdded(e.DateAdded)
	if err != nil {
		return models.Threat{}, err
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	indicators, err := databasetypes.JSONBFromStruct(models.MalwareURLIndicators{
		URL:       e.URL,
		Host:      e.Host,
		URLStatus: orDefault(e.URLStatus, ""),
	})
	if err != nil {
		return models.Threat{}, err
	}
	contextFields, err := databasetypes.JSONBFromStruct(models.MalwareURLContext{
		ThreatType: e.Threat,
		Tags:       tags,
		Reporter:   orDefault(e.Reporter, "Unknown"),
		Larted:     bool(e.Larted),
	})
	if err != nil {
		return models.Threat{}, err
	}

	return models.Threat{
		ExternalID:      "URL-" + id,
		Source:          models.ThreatSourceURLhaus,
		Category:        models.ThreatCategoryMalwareURL,
		Title:           "Malware URL: " + orDefault(e.URLStatus, "Unknown"),
		Description:     truncate(e.URL, maxDescriptionLength),
		Severity:        SeverityFromThreatLabel(e.Threat),
		IndicatorFields: indicators,
		ContextFields:   contextFields,
		DiscoveredAt:    discoveredAt,
	}, nil
}

var dateAddedLayouts = []string{
	"2006-01-02T15:04:05 MST",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDateAdded parses timestamps like "2024-01-15 10:30:00 UTC".
// Timestamps without zone are treated as UTC.
func parseDateAdded(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	normalized := strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	for _, layout := range dateAddedLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid dateadded %q", s)
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
