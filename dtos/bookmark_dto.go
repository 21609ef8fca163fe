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

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
)

type BookmarkCreateRequest struct {
	Notes string `json:"notes" validate:"max=10000"`
}

type BookmarkUpdateRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=10000"`
}

type BookmarkDTO struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ThreatID  int64     `json:"threat_id"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"created_at"`
}

func BookmarkToDTO(b models.Bookmark) BookmarkDTO {
	return BookmarkDTO{
		ID:        b.ID,
		UserID:    b.AccountID,
		ThreatID:  b.ThreatID,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.UTC().Format(timeFormat),
	}
}

type BookmarkedThreatDTO struct {
	ThreatDTO
	BookmarkNotes string `json:"bookmark_notes"`
	BookmarkedAt  string `json:"bookmarked_at"`
}

// BookmarkedThreatToDTO expands a bookmark with its threat. The threat has to be preloaded.
func BookmarkedThreatToDTO(b models.Bookmark) (BookmarkedThreatDTO, error) {
	threat, err := ThreatToDTO(b.Threat)
	if err != nil {
		return BookmarkedThreatDTO{}, err
	}
	return BookmarkedThreatDTO{
		ThreatDTO:     threat,
		BookmarkNotes: b.Notes,
		BookmarkedAt:  b.CreatedAt.UTC().Format(timeFormat),
	}, nil
}

type BookmarkResponse struct {
	Message  string      `json:"message"`
	Bookmark BookmarkDTO `json:"bookmark"`
}

type BookmarkListResponse struct {
	Bookmarks []BookmarkedThreatDTO `json:"bookmarks"`
	Total     int                   `json:"total"`
}
