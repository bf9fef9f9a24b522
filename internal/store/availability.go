package store

import (
	"context"
	"time"
)

// UploadAvailability records that a caregiver offers the given day. A second
// upload for the same (date, caregiver) pair is rejected rather than stored
// twice; a duplicate row would let two reservations book the same caregiver
// on the same day.
func (s *Store) UploadAvailability(ctx context.Context, date time.Time, caregiver string) error {
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO availabilities (avail_date, caregiver_username) VALUES ($1,$2)
		 ON CONFLICT DO NOTHING`,
		date, caregiver,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicate
	}
	return nil
}

// CaregiversAvailableOn lists caregivers offering the date, username ascending.
func (s *Store) CaregiversAvailableOn(ctx context.Context, date time.Time) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT caregiver_username FROM availabilities
		 WHERE avail_date = $1 ORDER BY caregiver_username`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
