// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
	"github.com/l3montree-dev/threatintel/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postgres allows at most 65535 bind parameters per statement
const parameterLimitError = "extended protocol limited to 65535 parameters"

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[ID, T]) Begin() *gorm.DB {
	return g.db.Begin()
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

// createBatchIgnoringConflicts inserts ts and silently skips rows violating
// a unique constraint on the given columns. It returns the number of inserted rows.
func (g *GormRepository[ID, T]) createBatchIgnoringConflicts(tx *gorm.DB, ts []T, conflictingColumns []clause.Column) (int64, error) {
	if len(ts) == 0 {
		return 0, nil
	}

	res := g.GetDB(tx).Clauses(clause.OnConflict{Columns: conflictingColumns, DoNothing: true}).Create(&ts)
	if res.Error != nil && res.Error.Error() == parameterLimitError && len(ts) > 1 {
		// split the batch in half and try again
		half := len(ts) / 2
		first, err := g.createBatchIgnoringConflicts(tx, ts[:half], conflictingColumns)
		if err != nil {
			return first, err
		}
		second, err := g.createBatchIgnoringConflicts(tx, ts[half:], conflictingColumns)
		return first + second, err
	}
	return res.RowsAffected, res.Error
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error

	return t, err
}

// Delete removes the row with the given id. It returns gorm.ErrRecordNotFound if there is none.
func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	res := g.GetDB(tx).Where("id = ?", id).Delete(&t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T

	err := g.db.Where("id IN ?", ids).Find(&ts).Error
	if err != nil {
		return ts, err
	}
	return ts, nil
}
