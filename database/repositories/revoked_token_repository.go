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
	"time"

	"github.com/l3montree-dev/threatintel/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type revokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) *revokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

func (r *revokedTokenRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Revoke is idempotent, revoking the same token twice is not an error
func (r *revokedTokenRepository) Revoke(tx *gorm.DB, token *models.RevokedToken) error {
	return r.getDB(tx).Clauses(clause.OnConflict{DoNothing: true}).Create(token).Error
}

func (r *revokedTokenRepository) IsRevoked(tx *gorm.DB, jti string) (bool, error) {
	var count int64
	err := r.getDB(tx).Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// DeleteExpired removes revocations of tokens which would be rejected anyway
func (r *revokedTokenRepository) DeleteExpired(tx *gorm.DB, now time.Time) (int64, error) {
	res := r.getDB(tx).Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}
