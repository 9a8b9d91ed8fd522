package auth

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCreds    = "INVALID_CREDENTIALS"
	TextCodeTokenExpired    = "TOKEN_EXPIRED"
	TextCodeTokenMalformed  = "TOKEN_MALFORMED"
	TextCodeWrongTokenKind  = "WRONG_TOKEN_TYPE"
	TextCodeSessionNotFound = "SESSION_NOT_FOUND"
	TextCodeUnknownSubject  = "UNKNOWN_SUBJECT"
	TextCodeEmptyPassword   = "EMPTY_PASSWORD"
	TextCodeDuplicateLogin  = "DUPLICATE_LOGIN"
)

// ErrMismatchedLoginPassword is returned by the login path whenever the
// conjunctive login+password check fails. Unknown login and wrong password
// are deliberately indistinguishable.
var ErrMismatchedLoginPassword = errors.New("invalid login or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a token's exp is in the past.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers every other decode failure: bad segments, wrong
// algorithm, invalid signature.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrUnableToFindSession is the error when the request carries no token.
var ErrUnableToFindSession = errors.New("unable to find session token", errors.CategoryAuth).
	WithTextCode(TextCodeSessionNotFound).
	WithCode(errors.CodeUnauthorized)

// ErrUnknownSubject is returned when a syntactically valid token's subject no
// longer resolves to a credential record. It maps to the same 401 as an
// expired token so the caller cannot probe for live ids.
var ErrUnknownSubject = errors.New("token subject does not resolve", errors.CategoryAuth).
	WithTextCode(TextCodeUnknownSubject).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityNotFound is the error the credential store returns for missing
// records. The auth paths translate it before it reaches a caller.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound)

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrDuplicateLogin is returned when registration hits the unique login or
// email constraint.
var ErrDuplicateLogin = errors.New("login already registered", errors.CategoryConflict).
	WithTextCode(TextCodeDuplicateLogin).
	WithCode(errors.CodeConflict)

// WrongTokenKindError builds the type-mismatch error for a token that is
// valid and unexpired but was issued for the other purpose. The message names
// both kinds, e.g. "Invalid token type 'refresh' expected 'access'".
func WrongTokenKindError(actual, expected TokenKind) *errors.Error {
	return errors.New(
		fmt.Sprintf("Invalid token type '%s' expected '%s'", actual, expected),
		errors.CategoryAuth,
	).
		WithTextCode(TextCodeWrongTokenKind).
		WithCode(errors.CodeUnauthorized).
		WithMetadata(map[string]any{
			"actual":   string(actual),
			"expected": string(expected),
		})
}

// IsWrongTokenKindError reports whether err is a token type mismatch.
func IsWrongTokenKindError(err error) bool {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr.TextCode == TextCodeWrongTokenKind
	}
	return false
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) && richErr.TextCode == TextCodeTokenExpired {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) && richErr.TextCode == TextCodeTokenMalformed {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed token")
}
