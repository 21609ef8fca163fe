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
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/utils"
	"gorm.io/gorm"
)

type accountRepository struct {
	utils.Repository[uuid.UUID, models.Account, *gorm.DB]
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Account](db),
	}
}

func (r *accountRepository) FindByEmail(tx *gorm.DB, email string) (models.Account, error) {
	var account models.Account
	err := r.GetDB(tx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error
	return account, err
}
