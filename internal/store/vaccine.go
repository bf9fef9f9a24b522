package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"vaccine-scheduler/internal/model"
)

// AddDoses creates the vaccine at the given count or increments an existing
// one, in a single statement so concurrent restocks cannot lose updates.
func (s *Store) AddDoses(ctx context.Context, name string, doses int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO vaccines (name, doses) VALUES ($1,$2)
		 ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + EXCLUDED.doses`,
		name, doses,
	)
	return err
}

func (s *Store) VaccineByName(ctx context.Context, name string) (*model.Vaccine, error) {
	v := &model.Vaccine{}
	err := s.pool.QueryRow(ctx,
		`SELECT name, doses FROM vaccines WHERE name = $1`, name,
	).Scan(&v.Name, &v.Doses)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) ListVaccines(ctx context.Context) ([]model.Vaccine, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, doses FROM vaccines ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vaccine
	for rows.Next() {
		var v model.Vaccine
		if err := rows.Scan(&v.Name, &v.Doses); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
