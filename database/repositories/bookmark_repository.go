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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookmarkRepository struct {
	utils.Repository[int64, models.Bookmark, *gorm.DB]
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *bookmarkRepository {
	return &bookmarkRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Bookmark](db),
	}
}

func (r *bookmarkRepository) FindByAccountAndThreat(tx *gorm.DB, accountID uuid.UUID, threatID int64) (models.Bookmark, error) {
	var b models.Bookmark
	err := r.GetDB(tx).Where("account_id = ? AND threat_id = ?", accountID, threatID).First(&b).Error
	return b, err
}

func (r *bookmarkRepository) ListByAccountWithThreat(tx *gorm.DB, accountID uuid.UUID) ([]models.Bookmark, error) {
	bookmarks := make([]models.Bookmark, 0)
	err := r.GetDB(tx).Preload("Threat").Where("account_id = ?", accountID).Order("created_at DESC, id DESC").Find(&bookmarks).Error
	return bookmarks, err
}

// UpdateNotes replaces the notes in a single statement and returns the updated bookmark
func (r *bookmarkRepository) UpdateNotes(tx *gorm.DB, accountID uuid.UUID, threatID int64, notes string) (models.Bookmark, error) {
	var b models.Bookmark
	res := r.GetDB(tx).Model(&b).
		Clauses(clause.Returning{}).
		Where("account_id = ? AND threat_id = ?", accountID, threatID).
		Update("notes", notes)
	if res.Error != nil {
		return models.Bookmark{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Bookmark{}, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *bookmarkRepository) DeleteByAccountAndThreat(tx *gorm.DB, accountID uuid.UUID, threatID int64) error {
	res := r.GetDB(tx).Where("account_id = ? AND threat_id = ?", accountID, threatID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
