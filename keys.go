package auth

import (
	"crypto/rsa"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// SigningKeys holds the RSA key pair for the token codec. A verification-only
// process carries just the public half.
type SigningKeys struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// CanSign reports whether this key set can issue tokens.
func (k *SigningKeys) CanSign() bool {
	return k != nil && k.Private != nil
}

// NewSigningKeys derives the public key from a private key. Handy for tests
// that generate isolated key material per case.
func NewSigningKeys(private *rsa.PrivateKey) *SigningKeys {
	if private == nil {
		return nil
	}
	return &SigningKeys{
		Private: private,
		Public:  &private.PublicKey,
	}
}

// LoadSigningKeys reads an RSA key pair from two PEM files at process start.
func LoadSigningKeys(privatePath, publicPath string) (*SigningKeys, error) {
	privatePEM, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to read private key file")
	}

	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to parse private key PEM")
	}

	public, err := loadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}

	return &SigningKeys{Private: private, Public: public}, nil
}

// LoadVerificationKeys reads only the public key, for processes that verify
// tokens but never issue them.
func LoadVerificationKeys(publicPath string) (*SigningKeys, error) {
	public, err := loadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}
	return &SigningKeys{Public: public}, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	publicPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to read public key file")
	}

	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to parse public key PEM")
	}

	return public, nil
}
