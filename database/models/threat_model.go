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

package models

import (
	"time"

	databasetypes "github.com/l3montree-dev/threatintel/database/types"
)

type ThreatSource string

const (
	ThreatSourceCISA      ThreatSource = "CISA"
	ThreatSourceAbuseIPDB ThreatSource = "AbuseIPDB"
	ThreatSourceURLhaus   ThreatSource = "URLhaus"
)

type ThreatCategory string

const (
	ThreatCategoryVulnerability ThreatCategory = "vulnerability"
	ThreatCategoryMaliciousIP   ThreatCategory = "malicious_ip"
	ThreatCategoryMalwareURL    ThreatCategory = "malware_url"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities from low (1) to critical (4). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

func (s Severity) IsValid() bool {
	return s.Rank() > 0
}

// Threat is a normalized indicator of compromise.
// ExternalID is unique across all sources and acts as the dedup key during ingestion.
type Threat struct {
	ID              int64               `gorm:"primaryKey"`
	ExternalID      string              `gorm:"type:text;not null;uniqueIndex:threats_external_id_key"`
	Source          ThreatSource        `gorm:"type:text;not null;index"`
	Category        ThreatCategory      `gorm:"type:text;index"`
	Title           string              `gorm:"type:text"`
	Description     string              `gorm:"type:text"`
	Severity        Severity            `gorm:"type:text;index"`
	ConfidenceScore *int                `gorm:"type:integer"`
	IndicatorFields databasetypes.JSONB `gorm:"type:jsonb;not null;default:'{}'"`
	ContextFields   databasetypes.JSONB `gorm:"type:jsonb;not null;default:'{}'"`
	DiscoveredAt    *time.Time          `gorm:"index"`
	IngestedAt      time.Time           `gorm:"not null"`
	Active          bool                `gorm:"not null;default:true"`
}

func (t Threat) TableName() string {
	return "threats"
}

// expected keys of the IndicatorFields and ContextFields documents per source.

type VulnerabilityIndicators struct {
	Vendor  string `json:"vendor"`
	Product string `json:"product"`
	CVEID   string `json:"cve_id"`
}

type VulnerabilityContext struct {
	RequiredAction  string `json:"required_action"`
	DueDate         string `json:"due_date"`
	KnownRansomware string `json:"known_ransomware"`
}

type MaliciousIPIndicators struct {
	IPAddress   string `json:"ip_address"`
	CountryCode string `json:"country_code"`
	ISP         string `json:"isp"`
}

type MaliciousIPContext struct {
	TotalReports     int    `json:"total_reports"`
	NumDistinctUsers int    `json:"num_distinct_users"`
	UsageType        string `json:"usage_type"`
	Domain           string `json:"domain"`
}

type MalwareURLIndicators struct {
	URL       string `json:"url"`
	Host      string `json:"host"`
	URLStatus string `json:"url_status"`
}

type MalwareURLContext struct {
	ThreatType string   `json:"threat_type"`
	Tags       []string `json:"tags"`
	Reporter   string   `json:"reporter"`
	Larted     bool     `json:"larted"`
}
