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
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	databasetypes "github.com/l3montree-dev/threatintel/database/types"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
)

var ErrAbuseIPDBKeyMissing = errors.New("AbuseIPDB API key not configured")

const (
	abuseIPDBConfidenceMinimum = 90
	abuseIPDBLimit             = 100
)

type abuseIPDBResponse struct {
	Data *[]abuseIPDBEntry `json:"data"`
}

type abuseIPDBEntry struct {
	IPAddress            string  `json:"ipAddress"`
	AbuseConfidenceScore int     `json:"abuseConfidenceScore"`
	TotalReports         int     `json:"totalReports"`
	NumDistinctUsers     int     `json:"numDistinctUsers"`
	CountryCode          *string `json:"countryCode"`
	ISP                  *string `json:"isp"`
	UsageType            *string `json:"usageType"`
	Domain               string  `json:"domain"`
	LastReportedAt       string  `json:"lastReportedAt"`
}

type abuseIPDBFeed struct {
	httpClient shared.HTTPClient
	url        string
	apiKey     string
}

func NewAbuseIPDBFeed(httpClient shared.HTTPClient, feedURL, apiKey string) *abuseIPDBFeed {
	return &abuseIPDBFeed{
		httpClient: httpClient,
		url:        feedURL,
		apiKey:     apiKey,
	}
}

func (f *abuseIPDBFeed) Descriptor() dtos.FeedSource {
	return abuseIPDBDescriptor
}

func (f *abuseIPDBFeed) Fetch(ctx context.Context) ([]models.Threat, error) {
	if f.apiKey == "" {
		return nil, ErrAbuseIPDBKeyMissing
	}

	u, err := url.Parse(f.url)
	if err != nil {
		return nil, fmt.Errorf("invalid AbuseIPDB url: %w", err)
	}
	q := u.Query()
	q.Set("confidenceMinimum", fmt.Sprint(abuseIPDBConfidenceMinimum))
	q.Set("limit", fmt.Sprint(abuseIPDBLimit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	var response abuseIPDBResponse
	if err := doJSON(f.httpClient, req, &response); err != nil {
		return nil, err
	}
	if response.Data == nil {
		return nil, fmt.Errorf("invalid API response")
	}

	threats := make([]models.Threat, 0, len(*response.Data))
	for i, entry := range *response.Data {
		threat, err := entry.toThreat()
		if err != nil {
			return nil, fmt.Errorf("ip %d: %w", i, err)
		}
		threats = append(threats, threat)
	}
	return threats, nil
}

func (e abuseIPDBEntry) toThreat() (models.Threat, error) {
	ip := strings.TrimSpace(e.IPAddress)
	if ip == "" {
		return models.Threat{}, fmt.Errorf("missing ipAddress")
	}

	discoveredAt, err := parseReportedAt(e.LastReportedAt)
	if err != nil {
		return models.Threat{}, err
	}

	indicators, err := databasetypes.JSONBFromStruct(models.MaliciousIPIndicators{
		IPAddress:   ip,
		CountryCode: orDefault(e.CountryCode, "Unknown"),
		ISP:         orDefault(e.ISP, "Unknown"),
	})
	if err != nil {
		return models.Threat{}, err
	}
	contextFields, err := databasetypes.JSONBFromStruct(models.MaliciousIPContext{
		TotalReports:     e.TotalReports,
		NumDistinctUsers: e.NumDistinctUsers,
		UsageType:        orDefault(e.UsageType, "Unknown"),
		Domain:           e.Domain,
	})
	if err != nil {
		return models.Threat{}, err
	}

	confidence := e.AbuseConfidenceScore
	return models.Threat{
		ExternalID:      "IP-" + ip,
		Source:          models.ThreatSourceAbuseIPDB,
		Category:        models.ThreatCategoryMaliciousIP,
		Title:           "Malicious IP: " + ip,
		Description:     fmt.Sprintf("Reported %d times", e.TotalReports),
		Severity:        SeverityFromConfidence(confidence),
		ConfidenceScore: &confidence,
		IndicatorFields: indicators,
		ContextFields:   contextFields,
		DiscoveredAt:    discoveredAt,
	}, nil
}

// parseReportedAt parses an ISO-8601 timestamp. A trailing Z is treated as +00:00.
func parseReportedAt(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid lastReportedAt %q", s)
	}
	t = t.UTC()
	return &t, nil
}
