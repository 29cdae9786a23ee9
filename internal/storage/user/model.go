package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user. PasswordHash must already
// be hashed by the caller.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
}

// IUserTable defines the read-side interface for user storage operations.
// Lookups return (nil, nil) when no row matches.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// IUserWriter adds the write-side operations on top of the reads. Satisfied
// by the tx-scoped Writer.
//
//go:generate mockery --name IUserWriter --output mock_IUserWriter.go
type IUserWriter interface {
	IUserTable
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
