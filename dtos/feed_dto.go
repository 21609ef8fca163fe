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

package dtos

// FeedSource describes a feed that can be ingested
type FeedSource struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	RequiresAPIKey bool   `json:"requires_api_key"`
}

// FeedResult is the outcome of a single ingestion run
type FeedResult struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}

// FeedRunSummary aggregates the runs of every known feed.
// TotalAdded only counts successful runs.
type FeedRunSummary struct {
	Results    map[string]FeedResult `json:"results"`
	TotalAdded int                   `json:"total_added"`
}
