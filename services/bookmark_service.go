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

package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threatintel/database"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/dtos"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type bookmarkService struct {
	bookmarkRepository shared.BookmarkRepository
	threatRepository   shared.ThreatRepository
}

var _ shared.BookmarkService = (*bookmarkService)(nil)

func NewBookmarkService(bookmarkRepository shared.BookmarkRepository, threatRepository shared.ThreatRepository) *bookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		threatRepository:   threatRepository,
	}
}

var errBookmarkNotFound = errors.Wrap(shared.ErrNotFound, "bookmark not found")

func (s *bookmarkService) Create(accountID uuid.UUID, threatID int64, notes string) (models.Bookmark, error) {
	if _, err := s.threatRepository.ReadActive(nil, threatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bookmark{}, errors.Wrap(shared.ErrNotFound, "threat not found")
		}
		return models.Bookmark{}, errors.Wrap(err, "could not read threat")
	}

	_, err := s.bookmarkRepository.FindByAccountAndThreat(nil, accountID, threatID)
	if err == nil {
		return models.Bookmark{}, errors.Wrap(shared.ErrConflict, "threat already bookmarked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Bookmark{}, errors.Wrap(err, "could not read bookmark")
	}

	bookmark := models.Bookmark{
		AccountID: accountID,
		ThreatID:  threatID,
		Notes:     notes,
	}
	if err := s.bookmarkRepository.Create(nil, &bookmark); err != nil {
		// a concurrent request created the same bookmark
		if database.IsUniqueViolation(err) {
			return models.Bookmark{}, errors.Wrap(shared.ErrConflict, "threat already bookmarked")
		}
		// the account was deleted while one of its tokens is still valid
		if database.IsForeignKeyViolation(err) {
			return models.Bookmark{}, errors.Wrap(shared.ErrNotFound, "account not found")
		}
		return models.Bookmark{}, errors.Wrap(err, "could not create bookmark")
	}
	return bookmark, nil
}

func (s *bookmarkService) List(accountID uuid.UUID) ([]dtos.BookmarkedThreatDTO, error) {
	bookmarks, err := s.bookmarkRepository.ListByAccountWithThreat(nil, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "could not list bookmarks")
	}

	result := make([]dtos.BookmarkedThreatDTO, 0, len(bookmarks))
	for _, b := range bookmarks {
		dto, err := dtos.BookmarkedThreatToDTO(b)
		if err != nil {
			slog.Warn("skipping malformed bookmarked threat", "bookmarkID", b.ID, "threatID", b.ThreatID, "err", err)
			continue
		}
		result = append(result, dto)
	}
	return result, nil
}

// Update replaces the notes of the bookmark. Nil notes leave the bookmark untouched.
func (s *bookmarkService) Update(accountID uuid.UUID, threatID int64, notes *string) (models.Bookmark, error) {
	var (
		bookmark models.Bookmark
		err      error
	)
	if notes == nil {
		bookmark, err = s.bookmarkRepository.FindByAccountAndThreat(nil, accountID, threatID)
	} else {
		bookmark, err = s.bookmarkRepository.UpdateNotes(nil, accountID, threatID, *notes)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bookmark{}, errBookmarkNotFound
		}
		return models.Bookmark{}, errors.Wrap(err, "could not update bookmark")
	}
	return bookmark, nil
}

func (s *bookmarkService) Delete(accountID uuid.UUID, threatID int64) error {
	if err := s.bookmarkRepository.DeleteByAccountAndThreat(nil, accountID, threatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBookmarkNotFound
		}
		return errors.Wrap(err, "could not delete bookmark")
	}
	return nil
}
