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
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
)

const (
	SourceIDCISA      = "cisa"
	SourceIDAbuseIPDB = "abuseipdb"
	SourceIDURLhaus   = "urlhaus"
)

var (
	cisaDescriptor = dtos.FeedSource{
		ID:          SourceIDCISA,
		Name:        "CISA Known Exploited Vulnerabilities",
		Description: "Vulnerabilities known to be actively exploited in the wild",
		Type:        string(models.ThreatCategoryVulnerability),
	}
	abuseIPDBDescriptor = dtos.FeedSource{
		ID:             SourceIDAbuseIPDB,
		Name:           "AbuseIPDB Blacklist",
		Description:    "IP addresses reported for malicious activity with at least 90% confidence",
		Type:           string(models.ThreatCategoryMaliciousIP),
		RequiresAPIKey: true,
	}
	urlhausDescriptor = dtos.FeedSource{
		ID:          SourceIDURLhaus,
		Name:        "URLhaus Recent URLs",
		Description: "URLs recently reported for distributing malware",
		Type:        string(models.ThreatCategoryMalwareURL),
	}
)
