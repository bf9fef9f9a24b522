// Package session holds the single logged-in identity for one interactive
// process: none, one patient, or one caregiver, never more than one.
package session

import (
	"errors"

	"vaccine-scheduler/internal/model"
)

var (
	ErrActive = errors.New("a user is already logged in")
	ErrNone   = errors.New("no user is logged in")
)

type Identity struct {
	Role     model.Role
	Username string
}

type Session struct {
	cur *Identity
}

func New() *Session {
	return &Session{}
}

// Login sets the identity only when none is active.
func (s *Session) Login(id Identity) error {
	if s.cur != nil {
		return ErrActive
	}
	s.cur = &id
	return nil
}

// Logout clears the identity regardless of role.
func (s *Session) Logout() error {
	if s.cur == nil {
		return ErrNone
	}
	s.cur = nil
	return nil
}

func (s *Session) Current() (Identity, bool) {
	if s.cur == nil {
		return Identity{}, false
	}
	return *s.cur, true
}
