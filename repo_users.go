package auth

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the credential repository: the point-lookup read surface the core
// depends on, plus the registration write the register endpoint needs.
// Login uniqueness lives in the database constraint, never in this code.
type Users interface {
	CredentialStore

	GetByIDTx(ctx context.Context, tx bun.IDB, id int64) (*User, error)
	GetByLoginTx(ctx context.Context, tx bun.IDB, login string) (*User, error)

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (a *users) GetByID(ctx context.Context, id int64) (*User, error) {
	return a.GetByIDTx(ctx, a.db, id)
}

func (a *users) GetByIDTx(ctx context.Context, tx bun.IDB, id int64) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapSelectError(err, "failed to get user by id")
	}

	record.EnsureRole()
	return record, nil
}

func (a *users) GetByLogin(ctx context.Context, login string) (*User, error) {
	return a.GetByLoginTx(ctx, a.db, login)
}

func (a *users) GetByLoginTx(ctx context.Context, tx bun.IDB, login string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias.login = ?", login).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapSelectError(err, "failed to get user by login")
	}

	record.EnsureRole()
	return record, nil
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	user.EnsureRole()

	if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateLogin
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to insert user")
	}

	return user, nil
}

func mapSelectError(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrIdentityNotFound
	}
	return errors.Wrap(err, errors.CategoryInternal, msg)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
