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
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/threatintel/config"
	"github.com/l3montree-dev/threatintel/database"
	"github.com/l3montree-dev/threatintel/database/models"
	"github.com/l3montree-dev/threatintel/monitoring"
	"github.com/l3montree-dev/threatintel/shared"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revocationCacheSize = 10_000

type authService struct {
	accountRepository      shared.AccountRepository
	revokedTokenRepository shared.RevokedTokenRepository

	secret []byte
	ttl    time.Duration

	// revoked token ids, saves a database roundtrip for replayed tokens
	revoked *expirable.LRU[string, struct{}]
	now     func() time.Time
}

var _ shared.AuthService = (*authService)(nil)

func NewAuthService(accountRepository shared.AccountRepository, revokedTokenRepository shared.RevokedTokenRepository, cfg config.AuthConfig) *authService {
	return &authService{
		accountRepository:      accountRepository,
		revokedTokenRepository: revokedTokenRepository,
		secret:                 cfg.JWTSecret,
		ttl:                    cfg.AccessTokenTTL,
		revoked:                expirable.NewLRU[string, struct{}](revocationCacheSize, nil, cfg.AccessTokenTTL),
		now:                    time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// compareDummyHash spends the same time as a real password check.
// Unknown emails are not distinguishable from wrong passwords by timing.
func compareDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *authService) Register(email, password string) (models.Account, shared.IssuedToken, error) {
	email = normalizeEmail(email)

	_, err := s.accountRepository.FindByEmail(nil, email)
	if err == nil {
		return models.Account{}, shared.IssuedToken{}, errors.Wrap(shared.ErrConflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, shared.IssuedToken{}, errors.Wrap(err, "could not look up account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, shared.IssuedToken{}, errors.Wrap(err, "could not hash password")
	}

	account := models.Account{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.accountRepository.Create(nil, &account); err != nil {
		if database.IsUniqueViolation(err) {
			return models.Account{}, shared.IssuedToken{}, errors.Wrap(shared.ErrConflict, "email already registered")
		}
		return models.Account{}, shared.IssuedToken{}, errors.Wrap(err, "could not create account")
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return models.Account{}, shared.IssuedToken{}, err
	}
	slog.Info("account registered", "accountID", account.ID)
	return account, token, nil
}

func (s *authService) Login(email, password string) (models.Account, shared.IssuedToken, error) {
	account, err := s.accountRepository.FindByEmail(nil, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareDummyHash(password)
			return models.Account{}, shared.IssuedToken{}, shared.ErrInvalidCredentials
		}
		return models.Account{}, shared.IssuedToken{}, errors.Wrap(err, "could not look up account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, shared.IssuedToken{}, shared.ErrInvalidCredentials
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return models.Account{}, shared.IssuedToken{}, err
	}
	return account, token, nil
}

func (s *authService) issueToken(accountID uuid.UUID) (shared.IssuedToken, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl).Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return shared.IssuedToken{}, errors.Wrap(err, "could not sign token")
	}
	return shared.IssuedToken{
		Token:     signed,
		ID:        claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) Authenticate(rawToken string) (shared.Session, error) {
	session, err := s.authenticate(rawToken)
	if err != nil {
		var authErr *shared.AuthError
		if errors.As(err, &authErr) {
			monitoring.AuthFailures.WithLabelValues(authErr.Code).Inc()
		}
		return shared.Session{}, err
	}
	return session, nil
}

func (s *authService) authenticate(rawToken string) (shared.Session, error) {
	if rawToken == "" {
		return shared.Session{}, shared.ErrTokenMissing
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return shared.Session{}, shared.ErrTokenExpired
		}
		return shared.Session{}, shared.ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return shared.Session{}, shared.ErrTokenInvalid
	}

	revoked, err := s.isRevoked(claims.ID)
	if err != nil {
		return shared.Session{}, err
	}
	if revoked {
		return shared.Session{}, shared.ErrTokenRevoked
	}

	return shared.Session{
		AccountID: accountID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) isRevoked(jti string) (bool, error) {
	if _, ok := s.revoked.Get(jti); ok {
		return true, nil
	}
	revoked, err := s.revokedTokenRepository.IsRevoked(nil, jti)
	if err != nil {
		return false, errors.Wrap(err, "could not check token revocation")
	}
	if revoked {
		s.revoked.Add(jti, struct{}{})
	}
	return revoked, nil
}

func revokedTokenFromSession(session shared.Session) *models.RevokedToken {
	return &models.RevokedToken{
		JTI:       session.TokenID,
		AccountID: session.AccountID,
		ExpiresAt: session.ExpiresAt,
	}
}

func (s *authService) Logout(session shared.Session) error {
	if err := s.revokedTokenRepository.Revoke(nil, revokedTokenFromSession(session)); err != nil {
		return errors.Wrap(err, "could not revoke token")
	}
	s.revoked.Add(session.TokenID, struct{}{})
	return nil
}

func (s *authService) CurrentAccount(session shared.Session) (models.Account, error) {
	account, err := s.accountRepository.Read(session.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, errors.Wrap(shared.ErrNotFound, "account not found")
		}
		return models.Account{}, err
	}
	return account, nil
}

// DeleteAccount removes the account with all its bookmarks and revokes the token used for the request
func (s *authService) DeleteAccount(session shared.Session) error {
	err := s.accountRepository.Transaction(func(tx shared.DB) error {
		if err := s.accountRepository.Delete(tx, session.AccountID); err != nil {
			return err
		}
		return s.revokedTokenRepository.Revoke(tx, revokedTokenFromSession(session))
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(shared.ErrNotFound, "account not found")
		}
		return errors.Wrap(err, "could not delete account")
	}
	s.revoked.Add(session.TokenID, struct{}{})
	slog.Info("account deleted", "accountID", session.AccountID)
	return nil
}

func (s *authService) PruneRevokedTokens() (int64, error) {
	return s.revokedTokenRepository.DeleteExpired(nil, s.now().UTC())
}
