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

package shared

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// AuthError is returned when a request cannot be authenticated.
// Every failure class has its own status code and machine readable code.
type AuthError struct {
	Status  int
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

var (
	ErrTokenMissing = &AuthError{Status: http.StatusUnauthorized, Code: "authorization_required", Message: "request does not contain an access token"}
	ErrTokenExpired = &AuthError{Status: http.StatusUnauthorized, Code: "token_expired", Message: "the access token has expired"}
	ErrTokenInvalid = &AuthError{Status: http.StatusUnprocessableEntity, Code: "invalid_token", Message: "the access token is invalid"}
	ErrTokenRevoked = &AuthError{Status: http.StatusUnauthorized, Code: "token_revoked", Message: "the access token has been revoked"}
)

// ErrInvalidCredentials is used for unknown emails and wrong passwords alike
var ErrInvalidCredentials = errors.New("invalid email or password")
