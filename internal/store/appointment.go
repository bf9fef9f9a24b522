package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"vaccine-scheduler/internal/model"
)

type Reservation struct {
	AppointmentID int64
	Caregiver     string
}

// Reserve books the lexicographically first caregiver available on the date
// against one dose of the named vaccine. The whole read-check-write sequence
// runs in one transaction with the availability and vaccine rows locked, so
// two concurrent reserves cannot consume the same slot or oversell the last
// dose: the loser blocks on the lock and re-reads state the winner committed.
func (s *Store) Reserve(ctx context.Context, date time.Time, vaccine, patient string) (*Reservation, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var caregiver string
	err = tx.QueryRow(ctx,
		`SELECT caregiver_username FROM availabilities
		 WHERE avail_date = $1
		 ORDER BY caregiver_username
		 LIMIT 1
		 FOR UPDATE`, date,
	).Scan(&caregiver)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoCaregiver
	}
	if err != nil {
		return nil, err
	}

	var doses int
	err = tx.QueryRow(ctx,
		`SELECT doses FROM vaccines WHERE name = $1 FOR UPDATE`, vaccine,
	).Scan(&doses)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoDoses
	}
	if err != nil {
		return nil, err
	}
	if doses == 0 {
		return nil, ErrNoDoses
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO appointments (appt_date, vaccine_name, patient_username, caregiver_username)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		date, vaccine, patient, caregiver,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM availabilities WHERE avail_date = $1 AND caregiver_username = $2`,
		date, caregiver,
	); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx,
		`UPDATE vaccines SET doses = doses - 1 WHERE name = $1`, vaccine,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &Reservation{AppointmentID: id, Caregiver: caregiver}, nil
}

func ownerColumn(role model.Role) string {
	if role == model.RoleCaregiver {
		return "caregiver_username"
	}
	return "patient_username"
}

// Cancel removes the appointment and returns its dose to stock, but only when
// the id belongs to the caller in the role-appropriate column. The deleted
// availability slot is not restored.
func (s *Store) Cancel(ctx context.Context, id int64, role model.Role, username string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var vaccine string
	q := fmt.Sprintf(
		`SELECT vaccine_name FROM appointments WHERE id = $1 AND %s = $2 FOR UPDATE`,
		ownerColumn(role),
	)
	err = tx.QueryRow(ctx, q, id, username).Scan(&vaccine)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx,
		`UPDATE vaccines SET doses = doses + 1 WHERE name = $1`, vaccine,
	); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1`, id,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// AppointmentsFor lists the caller's own appointments, id ascending.
func (s *Store) AppointmentsFor(ctx context.Context, role model.Role, username string) ([]model.Appointment, error) {
	q := fmt.Sprintf(
		`SELECT id, appt_date, vaccine_name, patient_username, caregiver_username, created_at
		 FROM appointments WHERE %s = $1 ORDER BY id`,
		ownerColumn(role),
	)
	rows, err := s.pool.Query(ctx, q, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.Vaccine, &a.Patient, &a.Caregiver, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
