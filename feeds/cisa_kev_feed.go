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

type cisaKEVCatalog struct {
	Title           string          `json:"title"`
	CatalogVersion  string          `json:"catalogVersion"`
	DateReleased    string          `json:"dateReleased"`
	Count           int             `json:"count"`
	Vulnerabilities *[]cisaKEVEntry `json:"vulnerabilities"`
}

type cisaKEVEntry struct {
	CVEID                      string   `json:"cveID"`
	VendorProject              string   `json:"vendorProject"`
	Product                    string   `json:"product"`
	VulnerabilityName          *string  `json:"vulnerabilityName"`
	DateAdded                  string   `json:"dateAdded"`
	ShortDescription           string   `json:"shortDescription"`
	RequiredAction             string   `json:"requiredAction"`
	DueDate                    string   `json:"dueDate"`
	KnownRansomwareCampaignUse *string  `json:"knownRansomwareCampaignUse"`
	Notes                      string   `json:"notes"`
	CWEs                       []string `json:"cwes"`
}

type cisaKEVFeed struct {
	httpClient shared.HTTPClient
	url        string
}

func NewCISAKEVFeed(httpClient shared.HTTPClient, url string) *cisaKEVFeed {
	return &cisaKEVFeed{
		httpClient: httpClient,
		url:        url,
	}
}

func (f *cisaKEVFeed) Descriptor() dtos.FeedSource {
	return cisaDescriptor
}

func (f *cisaKEVFeed) Fetch(ctx context.Context) ([]models.Threat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	var catalog cisaKEVCatalog
	if err := doJSON(f.httpClient, req, &catalog); err != nil {
		return nil, err
	}
	if catalog.Vulnerabilities == nil {
		return nil, fmt.Errorf("invalid response: missing vulnerabilities")
	}

	threats := make([]models.Threat, 0, len(*catalog.Vulnerabilities))
	for i, entry := range *catalog.Vulnerabilities {
		threat, err := entry.toThreat()
		if err != nil {
			return nil, fmt.Errorf("vulnerability %d: %w", i, err)
		}
		threats = append(threats, threat)
	}
	return threats, nil
}

func (e cisaKEVEntry) toThreat() (models.Threat, error) {
	cveID := strings.TrimSpace(e.CVEID)
	if cveID == "" {
		return models.Threat{}, fmt.Errorf("missing cveID")
	}

	indicators, err := databasetypes.JSONBFromStruct(models.VulnerabilityIndicators{
		Vendor:  e.VendorProject,
		Product: e.Product,
		CVEID:   cveID,
	})
	if err != nil {
		return models.Threat{}, err
	}
	contextFields, err := databasetypes.JSONBFromStruct(models.VulnerabilityContext{
		RequiredAction:  e.RequiredAction,
		DueDate:         e.DueDate,
		KnownRansomware: orDefault(e.KnownRansomwareCampaignUse, "Unknown"),
	})
	if err != nil {
		return models.Threat{}, err
	}

	return models.Threat{
		ExternalID:      cveID,
		Source:          models.ThreatSourceCISA,
		Category:        models.ThreatCategoryVulnerability,
		Title:           orDefault(e.VulnerabilityName, "Unknown"),
		Description:     e.ShortDescription,
		Severity:        models.SeverityCritical,
		IndicatorFields: indicators,
		ContextFields:   contextFields,
		DiscoveredAt:    parseDate(e.DateAdded),
	}, nil
}

// parseDate parses a YYYY-MM-DD date. Missing or malformed dates yield nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}
