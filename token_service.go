package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenServiceImpl implements the TokenService interface over an RSA key pair
type TokenServiceImpl struct {
	keys     *SigningKeys
	method   jwt.SigningMethod
	issuer   string
	audience jwt.ClaimStrings
	logger   Logger
}

// NewTokenService creates a new TokenService instance. The signing method
// comes from cfg and must be an RSA variant; a keys value without a private
// half yields a verification-only service.
func NewTokenService(keys *SigningKeys, cfg Config, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}

	method := jwt.GetSigningMethod(cfg.GetSigningMethod())
	if method == nil {
		method = jwt.SigningMethodRS256
	}

	var aud jwt.ClaimStrings
	if len(cfg.GetAudience()) > 0 {
		aud = make(jwt.ClaimStrings, len(cfg.GetAudience()))
		copy(aud, cfg.GetAudience())
	}

	return &TokenServiceImpl{
		keys:     keys,
		method:   method,
		issuer:   cfg.GetIssuer(),
		audience: aud,
		logger:   logger,
	}
}

// Sign stamps iat = now (UTC) and exp = iat + ttl onto the claims, merges the
// configured issuer and audience, and signs with the private key. The ttl
// must be positive so exp is always strictly greater than iat.
func (ts *TokenServiceImpl) Sign(claims *TokenClaims, ttl time.Duration) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	if !ts.keys.CanSign() {
		return "", errors.New("token service has no private key", errors.CategoryInternal)
	}

	if ttl <= 0 {
		return "", errors.New("token TTL must be positive", errors.CategoryBadInput)
	}

	now := time.Now().UTC()
	claims.RegisteredClaims.IssuedAt = jwt.NewNumericDate(now)
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	if claims.RegisteredClaims.Issuer == "" {
		claims.RegisteredClaims.Issuer = ts.issuer
	}
	if claims.RegisteredClaims.Audience == nil && ts.audience != nil {
		claims.RegisteredClaims.Audience = ts.audience
	}

	ensureTokenID(&claims.RegisteredClaims)

	token := jwt.NewWithClaims(ts.method, claims)

	signedString, err := token.SignedString(ts.keys.Private)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signedString, nil
}

// Validate parses and verifies a token string, returning structured claims.
// Expired tokens surface as ErrTokenExpired; every other failure (wrong
// algorithm, bad signature, garbage input) collapses into ErrTokenMalformed.
// Both map to the same 401 at the HTTP boundary.
func (ts *TokenServiceImpl) Validate(tokenString string) (*TokenClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 2)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != ts.method.Alg() {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, errors.New("unexpected signing method", errors.CategoryAuth)
		}
		return ts.keys.Public, nil
	}, parserOptions...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(errors.CodeUnauthorized)
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("TokenService validate could not decode or validate claims")
	return nil, ErrTokenMalformed
}

var _ TokenService = (*TokenServiceImpl)(nil)
