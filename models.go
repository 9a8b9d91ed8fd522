package auth

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the credential record: the stored identity login attempts are
// checked against. The wider platform hangs course progress, achievements,
// and titles off the same row; the auth core only reads it.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Nickname      string     `bun:"nickname" json:"nickname,omitempty"`
	Login         string     `bun:"login,notnull,unique" json:"login,omitempty"`
	Email         string     `bun:"email,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Role          UserRole   `bun:"role,notnull,default:'user'" json:"role,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// EnsureRole defaults the role for rows created before the column existed.
func (u *User) EnsureRole() {
	if u.Role == "" {
		u.Role = RoleUser
	}
}
