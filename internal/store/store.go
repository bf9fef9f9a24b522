package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrDuplicate     = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrNoCaregiver   = errors.New("no caregiver available")
	ErrNoDoses       = errors.New("not enough doses")
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
