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
	"strings"

	"github.com/l3montree-dev/threatintel/database/models"
)

// SeverityFromConfidence maps an abuse confidence score to a severity
func SeverityFromConfidence(confidence int) models.Severity {
	switch {
	case confidence >= 90:
		return models.SeverityCritical
	case confidence >= 75:
		return models.SeverityHigh
	case confidence >= 50:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

var (
	highSeverityLabels   = []string{"ransomware", "banking_trojan", "backdoor"}
	mediumSeverityLabels = []string{"trojan", "malware_download"}
)

// SeverityFromThreatLabel maps a free text malware label to a severity.
// Matching is a case insensitive substring match, high labels win over medium ones.
func SeverityFromThreatLabel(label string) models.Severity {
	label = strings.ToLower(label)
	if containsAny(label, highSeverityLabels) {
		return models.SeverityHigh
	}
	if containsAny(label, mediumSeverityLabels) {
		return models.SeverityMedium
	}
	return models.SeverityLow
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
