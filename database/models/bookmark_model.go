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

	"github.com/google/uuid"
)

// Bookmark is a per account annotation of a single threat.
// There is at most one bookmark per (account, threat).
type Bookmark struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	AccountID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:bookmarks_account_threat_key"`
	ThreatID  int64     `json:"threat_id" gorm:"not null;uniqueIndex:bookmarks_account_threat_key"`
	Threat    Threat    `json:"-" gorm:"foreignKey:ThreatID;constraint:OnDelete:CASCADE;"`
	Notes     string    `json:"notes" gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at"`
}

func (b Bookmark) TableName() string {
	return "bookmarks"
}
