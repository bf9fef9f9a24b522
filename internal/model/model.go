package model

import "time"

type Role int

const (
	RolePatient Role = iota
	RoleCaregiver
)

func (r Role) String() string {
	if r == RoleCaregiver {
		return "caregiver"
	}
	return "patient"
}

// Account is one row of the patients or caregivers table; Role picks which.
type Account struct {
	Username  string
	Salt      []byte
	Hash      []byte
	CreatedAt time.Time
}

type Vaccine struct {
	Name  string
	Doses int
}

type Availability struct {
	Date      time.Time
	Caregiver string
}

type Appointment struct {
	ID        int64
	Date      time.Time
	Vaccine   string
	Patient   string
	Caregiver string
	CreatedAt time.Time
}
