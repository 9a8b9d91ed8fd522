package auth

import (
	"context"
	"strconv"

	"github.com/goliatone/go-errors"
)

// UserProvider verifies credentials against the credential store.
type UserProvider struct {
	store  CredentialStore
	hasher PasswordHasher
	logger Logger
}

// NewUserProvider will create a new UserProvider backed by the given store.
// The hasher defaults to bcrypt.
func NewUserProvider(store CredentialStore) *UserProvider {
	return &UserProvider{
		store:  store,
		hasher: BcryptHasher{},
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	u.logger = l
	return u
}

// WithHasher overrides the password hasher, e.g. SHA256Hasher for stores
// migrated from the legacy platform.
func (u *UserProvider) WithHasher(h PasswordHasher) *UserProvider {
	u.hasher = h
	return u
}

// VerifyIdentity checks login and password as a single conjunctive
// predicate. A missing login and a wrong password both return
// ErrMismatchedLoginPassword so the caller learns nothing about which half
// failed.
func (u UserProvider) VerifyIdentity(ctx context.Context, login, password string) (Identity, error) {
	user, err := u.store.GetByLogin(ctx, login)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMismatchedLoginPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if user == nil {
		return nil, ErrMismatchedLoginPassword
	}

	if err := u.hasher.Compare(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrMismatchedLoginPassword) {
			return nil, ErrMismatchedLoginPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to compare password digest")
	}

	return NewIdentityFromUser(user), nil
}

// FindIdentityByID resolves a credential record by its token subject.
func (u UserProvider) FindIdentityByID(ctx context.Context, id string) (Identity, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrUnknownSubject
	}

	user, err := u.store.GetByID(ctx, numericID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrUnknownSubject
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by id")
	}

	return NewIdentityFromUser(user), nil
}

var _ IdentityProvider = (*UserProvider)(nil)
