package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"vaccine-scheduler/internal/model"
)

// table names cannot be bound as parameters, so they come from this switch only
func accountTable(role model.Role) string {
	if role == model.RoleCaregiver {
		return "caregivers"
	}
	return "patients"
}

func (s *Store) CreateAccount(ctx context.Context, role model.Role, a *model.Account) error {
	exists, err := s.UsernameExists(ctx, role, a.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	q := fmt.Sprintf(`INSERT INTO %s (username, salt, hash) VALUES ($1,$2,$3)`, accountTable(role))
	_, err = s.pool.Exec(ctx, q, a.Username, a.Salt, a.Hash)
	if err != nil {
		// unique violation = lost a race with another process
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *Store) UsernameExists(ctx context.Context, role model.Role, username string) (bool, error) {
	q := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE username = $1)`, accountTable(role))
	var exists bool
	err := s.pool.QueryRow(ctx, q, username).Scan(&exists)
	return exists, err
}

func (s *Store) AccountByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error) {
	a := &model.Account{}
	q := fmt.Sprintf(
		`SELECT username, salt, hash, created_at FROM %s WHERE username = $1`,
		accountTable(role),
	)
	err := s.pool.QueryRow(ctx, q, username).Scan(&a.Username, &a.Salt, &a.Hash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
